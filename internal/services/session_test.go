package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techconnect/internal/models"
	"techconnect/internal/storage"
)

const testSecret = "test-secret"

func newTestManager() (*SessionManager, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewSessionManager(store, NewDemoCredentials(), testSecret), store
}

func TestLoginSuccess(t *testing.T) {
	sm, _ := newTestManager()

	sess, err := sm.Login("admin@techconnect.com", "admin123", false)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Name)
	assert.Equal(t, "admin@techconnect.com", sess.Email)
	assert.False(t, sess.LoginTime.IsZero())
	assert.True(t, sm.IsLoggedIn())

	current, ok := sm.Current()
	require.True(t, ok)
	assert.Equal(t, sess.Email, current.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	sm, store := newTestManager()

	_, err := sm.Login("admin@techconnect.com", "wrongpassword", true)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sm.IsLoggedIn())

	// Başarısız giriş hiçbir şey kalıcılaştırmamalı
	var token string
	assert.False(t, store.Get(storage.KeySession, &token))
}

func TestLoginUnknownUser(t *testing.T) {
	sm, _ := newTestManager()
	_, err := sm.Login("nobody@example.com", "password", false)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRememberedSessionRestore(t *testing.T) {
	sm, store := newTestManager()

	_, err := sm.Login("admin@techconnect.com", "admin123", true)
	require.NoError(t, err)

	var token string
	require.True(t, store.Get(storage.KeySession, &token), "remember ile token saklanmalı")

	// Aynı depo üzerinde yeni bir yönetici, yeniden başlatmayı taklit eder
	restarted := NewSessionManager(store, NewDemoCredentials(), testSecret)
	require.True(t, restarted.Restore())
	assert.True(t, restarted.IsLoggedIn())

	current, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "admin", current.Name)
	assert.Equal(t, "admin@techconnect.com", current.Email)
}

func TestRestoreWithoutRemember(t *testing.T) {
	sm, store := newTestManager()

	_, err := sm.Login("demo@techconnect.com", "demo123", false)
	require.NoError(t, err)

	restarted := NewSessionManager(store, NewDemoCredentials(), testSecret)
	assert.False(t, restarted.Restore())
	assert.False(t, restarted.IsLoggedIn())
}

func TestRestoreRejectsTamperedToken(t *testing.T) {
	sm, store := newTestManager()

	_, err := sm.Login("admin@techconnect.com", "admin123", true)
	require.NoError(t, err)

	// Farklı anahtarla imzalanmış token geçersiz sayılmalı
	other := NewSessionManager(store, NewDemoCredentials(), "another-secret")
	assert.False(t, other.Restore())
	assert.False(t, other.IsLoggedIn())

	// Geçersiz token silinmiş olmalı
	var token string
	assert.False(t, store.Get(storage.KeySession, &token))
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	sm, store := newTestManager()

	_, err := sm.Login("admin@techconnect.com", "admin123", true)
	require.NoError(t, err)

	store.Set(storage.KeyCart, []models.CartItem{{ProductID: "router-x1", Quantity: 1}})
	store.Set(storage.KeyOrders, []models.PurchaseRecord{{OrderID: "TC00000001AAAA"}})

	sm.Logout()

	assert.False(t, sm.IsLoggedIn())
	_, ok := sm.Current()
	assert.False(t, ok)

	var token string
	assert.False(t, store.Get(storage.KeySession, &token))
	var cart []models.CartItem
	assert.False(t, store.Get(storage.KeyCart, &cart))

	// Siparişler logout'tan etkilenmez
	var orders []models.PurchaseRecord
	require.True(t, store.Get(storage.KeyOrders, &orders))
	assert.Len(t, orders, 1)
}

func TestCartServiceRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	cs := NewCartService(store)

	assert.Empty(t, cs.Load())
	assert.Zero(t, cs.Count())

	cs.Save([]models.CartItem{
		{ProductID: "router-x1", Name: "Router X1", Price: 299.99, Quantity: 2},
		{ProductID: "modem-pro", Name: "Modem Pro", Price: 199.99, Quantity: 1},
	})
	assert.Len(t, cs.Load(), 2)
	assert.Equal(t, 3, cs.Count())

	cs.Clear()
	assert.Empty(t, cs.Load())
}
