package storage

// Tarayıcı origin'ine bağlı anahtar/değer deposunun karşılığı.
// Depo "best effort" çalışır: kayıt sistemi değil, kolaylık katmanıdır.
// Hatalar loglanır ve sessizce yutulur; çağıran taraf hata görmez.

// Depoda kullanılan anahtarlar.
const (
	KeySession = "rememberedUser"
	KeyCart    = "cart"
	KeyOrders  = "orders"
)

// Store, JSON olarak serileştirilmiş kayıtları adlandırılmış anahtarlar
// altında tutar. Get, kayıt varsa ve çözülebiliyorsa true döndürür.
type Store interface {
	Get(key string, into any) bool
	Set(key string, value any)
	Remove(key string)
}
