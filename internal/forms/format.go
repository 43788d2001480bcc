package forms

import "strings"

// Her tuş vuruşunda ham girdiyi görüntü biçimine çeviren dönüşümler.
// Doğrulamadan bağımsız çalışırlar; doğrulama biçimlenmiş değeri okur.

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber, rakamları 4'erli bloklar halinde tek boşlukla ayırır
// ve biçimlenmiş değeri 19 karakterde keser (en fazla 16 hane görünür).
func FormatCardNumber(raw string) string {
	digits := stripNonDigits(raw)

	var blocks []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		blocks = append(blocks, digits[i:end])
	}

	formatted := strings.Join(blocks, " ")
	if len(formatted) > 19 {
		formatted = formatted[:19]
	}
	return formatted
}

// FormatExpiry, 2 haneden sonra otomatik olarak '/' ekler.
func FormatExpiry(raw string) string {
	digits := stripNonDigits(raw)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV, rakam dışı karakterleri atar ve 4 hanede keser.
func FormatCVV(raw string) string {
	digits := stripNonDigits(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}
