package workflow

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const orderSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID, "TC" öneki + zaman bileşeni + kısa rastgele sonek üretir.
// Zaman bileşeni unix-milisaniyenin son 8 hanesidir; sonek uuid'nin rastgele
// baytlarından türetilen 4 büyük alfanümerik karakterdir. Tek oturumluk
// sipariş hacmi için çakışma olasılığı ihmal edilebilir.
func NewOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}

	u := uuid.New()
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderSuffixAlphabet[int(u[i])%len(orderSuffixAlphabet)]
	}

	return "TC" + ts + string(suffix)
}
