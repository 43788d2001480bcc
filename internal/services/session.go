package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"techconnect/internal/models"
	"techconnect/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials, e-posta/parola eşleşmediğinde döner.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CredentialSource, giriş bilgilerini doğrular. Demo tabloyu gerçek bir
// auth servisiyle değiştirebilmek için arayüz olarak tanımlandı.
type CredentialSource interface {
	Authenticate(email, password string) bool
}

// DemoCredentials, sabit demo kullanıcı listesidir. Parolalar açılışta
// bcrypt ile hash'lenir; düz metin bellekte tutulmaz.
type DemoCredentials struct {
	users map[string]string
}

// NewDemoCredentials, demo kullanıcılarla bir DemoCredentials oluşturur.
func NewDemoCredentials() *DemoCredentials {
	plain := map[string]string{
		"admin@techconnect.com": "admin123",
		"user@example.com":      "password",
		"demo@techconnect.com":  "demo123",
	}

	users := make(map[string]string, len(plain))
	for email, password := range plain {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("DemoCredentials - %s için hash üretilemedi: %v", email, err)
			continue
		}
		users[email] = string(hash)
	}
	return &DemoCredentials{users: users}
}

func (dc *DemoCredentials) Authenticate(email, password string) bool {
	hash, ok := dc.users[strings.TrimSpace(email)]
	if !ok {
		return false
	}
	return CheckPasswordHash(password, hash)
}

// CheckPasswordHash, verilen parola ile hash'i karşılaştırır.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// SessionManager, oturum durumunu tutar: loggedIn doğruysa current doludur.
// "Beni hatırla" seçiliyse oturum, imzalı bir token olarak depoya yazılır.
type SessionManager struct {
	mu      sync.RWMutex
	store   storage.Store
	creds   CredentialSource
	secret  []byte
	current *models.Session
}

// NewSessionManager, yeni bir SessionManager örneği oluşturur.
func NewSessionManager(store storage.Store, creds CredentialSource, secret string) *SessionManager {
	return &SessionManager{
		store:  store,
		creds:  creds,
		secret: []byte(secret),
	}
}

// Restore, açılışta hatırlanan oturumu depodan geri yükler. Token yoksa
// veya imza doğrulanamıyorsa oturum kapalı kalır. TTL kontrolü yoktur;
// hatırlanan oturum logout'a kadar geçerlidir.
func (sm *SessionManager) Restore() bool {
	var token string
	if !sm.store.Get(storage.KeySession, &token) {
		return false
	}

	sess, err := sm.parseToken(token)
	if err != nil {
		log.Printf("SessionManager.Restore - token geçersiz, siliniyor: %v", err)
		sm.store.Remove(storage.KeySession)
		return false
	}

	sm.mu.Lock()
	sm.current = sess
	sm.mu.Unlock()
	log.Printf("SessionManager.Restore - oturum geri yüklendi: %s", sess.Email)
	return true
}

// Login, giriş bilgilerini doğrular ve oturumu açar. remember seçiliyse
// oturum kalıcı olarak saklanır, değilse süreç ömrüyle sınırlıdır.
func (sm *SessionManager) Login(email, password string, remember bool) (models.Session, error) {
	email = strings.TrimSpace(email)

	if !sm.creds.Authenticate(email, password) {
		return models.Session{}, ErrInvalidCredentials
	}

	sess := &models.Session{
		Email:     email,
		Name:      strings.SplitN(email, "@", 2)[0],
		LoginTime: time.Now(),
	}

	sm.mu.Lock()
	sm.current = sess
	sm.mu.Unlock()

	if remember {
		token, err := sm.signToken(sess)
		if err != nil {
			log.Printf("SessionManager.Login - token imzalanamadı: %v", err)
		} else {
			sm.store.Set(storage.KeySession, token)
		}
	}

	return *sess, nil
}

// Logout, oturumu kapatır; hatırlanan oturumla birlikte sepet kaydı da
// silinir (sepet oturuma bağlıdır). Sipariş listesi dokunulmadan kalır.
func (sm *SessionManager) Logout() {
	sm.mu.Lock()
	sm.current = nil
	sm.mu.Unlock()

	sm.store.Remove(storage.KeySession)
	sm.store.Remove(storage.KeyCart)
}

// IsLoggedIn, açık bir oturum olup olmadığını döndürür.
func (sm *SessionManager) IsLoggedIn() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.current != nil
}

// Current, açık oturumun bir kopyasını döndürür.
func (sm *SessionManager) Current() (models.Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if sm.current == nil {
		return models.Session{}, false
	}
	return *sm.current, true
}

func (sm *SessionManager) signToken(sess *models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sess.Email,
		"name": sess.Name,
		"iat":  sess.LoginTime.Unix(),
	})
	return token.SignedString(sm.secret)
}

func (sm *SessionManager) parseToken(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return sm.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	email, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	if email == "" {
		return nil, errors.New("token has no subject")
	}

	sess := &models.Session{Email: email, Name: name}
	if iat, ok := claims["iat"].(float64); ok {
		sess.LoginTime = time.Unix(int64(iat), 0)
	}
	return sess, nil
}
