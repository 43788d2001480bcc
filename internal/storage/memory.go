package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore, kayıtları bellekte tutar. Kalıcı oturum seçilmediğinde ve
// testlerde kullanılır; süreç sonlandığında içerik kaybolur.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore, boş bir MemoryStore örneği oluşturur.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]json.RawMessage{}}
}

func (ms *MemoryStore) Get(key string, into any) bool {
	ms.mu.RLock()
	raw, ok := ms.data[key]
	ms.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		log.Printf("MemoryStore.Get - %s çözülemedi: %v", key, err)
		return false
	}
	return true
}

func (ms *MemoryStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("MemoryStore.Set - %s serileştirilemedi: %v", key, err)
		return
	}
	ms.mu.Lock()
	ms.data[key] = raw
	ms.mu.Unlock()
}

func (ms *MemoryStore) Remove(key string) {
	ms.mu.Lock()
	delete(ms.data, key)
	ms.mu.Unlock()
}
