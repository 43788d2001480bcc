package services

import (
	"log"

	"techconnect/internal/models"
	"techconnect/internal/storage"
)

// CartService, sepet işlemlerini yönetir. Vitrin akışı sepeti henüz
// kullanmıyor; yükleme/kaydetme/temizleme dışında işlem yok.
type CartService struct {
	store storage.Store
}

// NewCartService, yeni bir CartService örneği oluşturur.
func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

// Load, kalıcı sepeti depodan okur. Kayıt yoksa boş sepet döner.
func (cs *CartService) Load() []models.CartItem {
	var items []models.CartItem
	if !cs.store.Get(storage.KeyCart, &items) {
		return []models.CartItem{}
	}
	log.Printf("CartService.Load - %d öğe yüklendi", len(items))
	return items
}

// Save, sepeti sıralı liste olarak depoya yazar.
func (cs *CartService) Save(items []models.CartItem) {
	cs.store.Set(storage.KeyCart, items)
}

// Clear, kalıcı sepet kaydını siler.
func (cs *CartService) Clear() {
	cs.store.Remove(storage.KeyCart)
}

// Count, sepetteki toplam ürün sayısını döndürür.
func (cs *CartService) Count() int {
	total := 0
	for _, item := range cs.Load() {
		total += item.Quantity
	}
	return total
}
