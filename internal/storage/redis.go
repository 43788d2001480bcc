package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore, kayıtları paylaşılan bir Redis sunucusunda tutar.
// Bağlantı hataları diğer depolar gibi loglanır ve yutulur.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore, sunucuya bağlanır ve ping ile doğrular.
func NewRedisStore(addr, prefix string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

func (rs *RedisStore) key(key string) string {
	return rs.prefix + ":" + key
}

func (rs *RedisStore) Get(key string, into any) bool {
	raw, err := rs.rdb.Get(context.Background(), rs.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("RedisStore.Get - %s okunamadı: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		log.Printf("RedisStore.Get - %s çözülemedi: %v", key, err)
		return false
	}
	return true
}

func (rs *RedisStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("RedisStore.Set - %s serileştirilemedi: %v", key, err)
		return
	}
	if err := rs.rdb.Set(context.Background(), rs.key(key), raw, 0).Err(); err != nil {
		log.Printf("RedisStore.Set - %s yazılamadı: %v", key, err)
	}
}

func (rs *RedisStore) Remove(key string) {
	if err := rs.rdb.Del(context.Background(), rs.key(key)).Err(); err != nil {
		log.Printf("RedisStore.Remove - %s silinemedi: %v", key, err)
	}
}

// Close, Redis bağlantısını kapatır.
func (rs *RedisStore) Close() error {
	return rs.rdb.Close()
}
