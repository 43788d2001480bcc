package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"log"
	"math/big"
	"net"
	"net/http"
	"os"
	"time"

	"techconnect/internal/catalog"
	"techconnect/internal/clock"
	"techconnect/internal/config"
	"techconnect/internal/handlers"
	"techconnect/internal/notify"
	"techconnect/internal/services"
	"techconnect/internal/storage"
	"techconnect/internal/telemetry"
	"techconnect/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// generateSelfSignedCert creates a self-signed certificate for HTTPS
func generateSelfSignedCert() (tls.Certificate, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return tls.Certificate{}, err
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"TechConnect Pro"},
			Country:      []string{"US"},
		},
		NotBefore:   time.Now(),
		NotAfter:    time.Now().Add(365 * 24 * time.Hour), // 1 year
		KeyUsage:    x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		DNSNames:    []string{"localhost", "*.localhost"},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return tls.X509KeyPair(certPEM, keyPEM)
}

// newStore, yapılandırmaya göre depo arka ucunu seçer. Redis'e
// bağlanılamazsa dosya deposuna düşülür; depo katmanı best effort'tur.
func newStore(cfg *config.Config) storage.Store {
	switch cfg.StoreBackend {
	case "redis":
		store, err := storage.NewRedisStore(cfg.RedisAddr, "techconnect")
		if err != nil {
			log.Printf("❌ Redis'e bağlanılamadı (%s), dosya deposuna geçiliyor: %v", cfg.RedisAddr, err)
			return storage.NewFileStore(cfg.DataPath)
		}
		log.Printf("✅ Redis deposu kullanılıyor: %s", cfg.RedisAddr)
		return store
	case "memory":
		log.Printf("Bellek içi depo kullanılıyor (kalıcılık yok)")
		return storage.NewMemoryStore()
	default:
		log.Printf("Dosya deposu kullanılıyor: %s", cfg.DataPath)
		return storage.NewFileStore(cfg.DataPath)
	}
}

func main() {
	// Production modunu aktif et
	gin.SetMode(gin.ReleaseMode)

	cfg := config.NewConfig()
	store := newStore(cfg)
	sched := clock.System{}

	cat := catalog.NewCatalog()
	sessions := services.NewSessionManager(store, services.NewDemoCredentials(), cfg.SessionSecret)
	cart := services.NewCartService(store)
	email := services.NewEmailService()
	notifier := notify.NewNotifier(handlers.LogSink{}, sched, cfg.NotifyTTL)

	// Açılışta hatırlanan oturumu geri yükle
	if sessions.Restore() {
		if sess, ok := sessions.Current(); ok {
			log.Printf("👋 Hoş geldin, %s (hatırlanan oturum)", sess.Name)
		}
	}

	wf := workflow.NewController(workflow.Config{
		LoginDelay:     cfg.LoginDelay,
		PurchaseDelay:  cfg.PurchaseDelay,
		PlanDelay:      cfg.PlanDelay,
		CelebrationTTL: cfg.CelebrationTTL,
	}, workflow.Deps{
		Sessions:  sessions,
		Catalog:   cat,
		Email:     email,
		Store:     store,
		Notifier:  notifier,
		Presenter: handlers.LogPresenter{},
		Scheduler: sched,
	})

	h := handlers.NewHandler(wf, cat, sessions, notifier, cart)

	// Engine'i manuel olarak oluştur (middleware'leri kontrol etmek için)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(telemetry.Middleware())

	// Proxy güvenlik ayarları
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	h.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Barındırma ortamı için ortam değişkeni kontrolü
	if port := os.Getenv("PORT"); port != "" {
		log.Printf("🌐 HTTP Server başlatılıyor (port: %s)...", port)
		log.Printf("📱 Erişim için: http://localhost:%s", port)
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("HTTP Server başlatılamadı: %v", err)
		}
		return
	}

	// Lokal geliştirme: HTTP ve HTTPS
	httpPort := cfg.HTTPPort
	httpsPort := "8443"

	cert, err := generateSelfSignedCert()
	if err != nil {
		log.Printf("❌ Self-signed sertifika oluşturulamadı: %v", err)
		log.Printf("🌐 Sadece HTTP başlatılıyor...")
		log.Printf("📱 HTTP erişim için: http://localhost:%s", httpPort)
		if err := r.Run(":" + httpPort); err != nil {
			log.Fatalf("HTTP Server başlatılamadı: %v", err)
		}
		return
	}

	httpsServer := &http.Server{
		Addr:    ":" + httpsPort,
		Handler: r,
		TLSConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
		},
	}

	// HTTPS server'ı goroutine'de başlat
	log.Printf("🔒 HTTPS Server başlatılıyor...")
	log.Printf("🔐 Güvenli erişim için: https://localhost:%s", httpsPort)
	go func() {
		if err := httpsServer.ListenAndServeTLS("", ""); err != nil {
			log.Printf("❌ HTTPS Server başlatılamadı: %v", err)
		}
	}()

	// HTTP server'ı ana thread'de başlat
	log.Printf("📱 HTTP erişim için: http://localhost:%s", httpPort)
	if err := r.Run(":" + httpPort); err != nil {
		log.Fatalf("HTTP Server başlatılamadı: %v", err)
	}
}
