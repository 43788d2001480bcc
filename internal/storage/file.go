package storage

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// FileStore, tüm kayıtları tek bir JSON dosyasında tutar. Her yazmada
// dosya yeniden yazılır; dosya hataları loglanır ve yutulur.
type FileStore struct {
	mu       sync.RWMutex
	data     map[string]json.RawMessage
	filePath string
}

// NewFileStore, verilen dosyadan kayıtları yükler ve bir FileStore döndürür.
// Dosya yoksa boş başlar; bozuksa içerik sıfırlanır.
func NewFileStore(filePath string) *FileStore {
	fs := &FileStore{
		data:     map[string]json.RawMessage{},
		filePath: filePath,
	}
	fs.loadData()
	return fs
}

func (fs *FileStore) loadData() {
	fileData, err := os.ReadFile(fs.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("FileStore - %s okunamadı: %v", fs.filePath, err)
		}
		return
	}
	if err := json.Unmarshal(fileData, &fs.data); err != nil {
		log.Printf("FileStore - %s çözülemedi, içerik sıfırlanıyor: %v", fs.filePath, err)
		fs.data = map[string]json.RawMessage{}
	}
}

// saveData, kilit tutulurken çağrılmalıdır.
func (fs *FileStore) saveData() {
	fileData, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		log.Printf("FileStore - serileştirme hatası: %v", err)
		return
	}
	if err := os.WriteFile(fs.filePath, fileData, 0644); err != nil {
		log.Printf("FileStore - %s yazılamadı: %v", fs.filePath, err)
	}
}

func (fs *FileStore) Get(key string, into any) bool {
	fs.mu.RLock()
	raw, ok := fs.data[key]
	fs.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		log.Printf("FileStore.Get - %s çözülemedi: %v", key, err)
		return false
	}
	return true
}

func (fs *FileStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("FileStore.Set - %s serileştirilemedi: %v", key, err)
		return
	}
	fs.mu.Lock()
	fs.data[key] = raw
	fs.saveData()
	fs.mu.Unlock()
}

func (fs *FileStore) Remove(key string) {
	fs.mu.Lock()
	delete(fs.data, key)
	fs.saveData()
	fs.mu.Unlock()
}
