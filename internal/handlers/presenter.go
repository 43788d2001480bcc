package handlers

import (
	"log"

	"techconnect/internal/models"
	"techconnect/internal/notify"
)

// LogPresenter, sunum niyetlerini log'a yazar. Gerçek sayfa işbirlikçisi
// yerine sunucu tarafında modal/kutlama durumunu görünür kılar.
type LogPresenter struct{}

func (LogPresenter) ShowLoginModal() {
	log.Printf("Presenter - giriş modalı açıldı")
}

func (LogPresenter) HideLoginModal() {
	log.Printf("Presenter - giriş modalı kapandı")
}

func (LogPresenter) SetLoginSubmitting(active bool) {
	if active {
		log.Printf("Presenter - giriş gönderiliyor... (Logging in...)")
	}
}

func (LogPresenter) ShowPurchaseModal(product models.Product) {
	log.Printf("Presenter - satın alma modalı açıldı: %s", product.Name)
}

func (LogPresenter) HidePurchaseModal() {
	log.Printf("Presenter - satın alma modalı kapandı")
}

func (LogPresenter) SetPurchaseSubmitting(active bool) {
	if active {
		log.Printf("Presenter - ödeme işleniyor... (Processing...)")
	}
}

func (LogPresenter) ShowCelebration(product models.Product) {
	log.Printf("Presenter - kutlama gösteriliyor: %s", product.Name)
}

func (LogPresenter) HideCelebration() {
	log.Printf("Presenter - kutlama kapandı")
}

func (LogPresenter) SessionChanged(sess *models.Session) {
	if sess == nil {
		log.Printf("Presenter - oturum kapandı, üst çubuk sıfırlandı")
		return
	}
	log.Printf("Presenter - üst çubuk güncellendi: Hi, %s", sess.Name)
}

// LogSink, bildirimleri log'a yazan notify.Sink uygulamasıdır. Görünen
// bildirim Notifier üzerinden /notification ucuyla okunur.
type LogSink struct{}

func (LogSink) Show(n notify.Notification) {
	log.Printf("Bildirim [%s] %s", n.Severity, n.Message)
}

func (LogSink) Clear(id uint64) {
	log.Printf("Bildirim kapandı (id=%d)", id)
}
