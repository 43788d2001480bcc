package workflow

import "techconnect/internal/models"

// Presenter, akış çekirdeğinin sunum katmanına ilettiği niyetlerdir.
// Çekirdek DOM/ekran işlerine hiç dokunmaz; odak, kaydırma kilidi ve form
// temizliği bu kapının uygulayıcısına aittir.
type Presenter interface {
	ShowLoginModal()
	HideLoginModal()
	SetLoginSubmitting(active bool)

	ShowPurchaseModal(product models.Product)
	HidePurchaseModal()
	SetPurchaseSubmitting(active bool)

	ShowCelebration(product models.Product)
	HideCelebration()

	// SessionChanged, giriş/çıkış sonrası üst çubuğun yenilenmesi içindir.
	// Çıkışta nil gelir.
	SessionChanged(sess *models.Session)
}

// NopPresenter, sunum katmanı olmayan kullanımlar (testler, arka plan
// işleri) için boş uygulamadır.
type NopPresenter struct{}

func (NopPresenter) ShowLoginModal()                      {}
func (NopPresenter) HideLoginModal()                      {}
func (NopPresenter) SetLoginSubmitting(bool)              {}
func (NopPresenter) ShowPurchaseModal(models.Product)     {}
func (NopPresenter) HidePurchaseModal()                   {}
func (NopPresenter) SetPurchaseSubmitting(bool)           {}
func (NopPresenter) ShowCelebration(models.Product)       {}
func (NopPresenter) HideCelebration()                     {}
func (NopPresenter) SessionChanged(*models.Session)       {}
