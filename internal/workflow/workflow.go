package workflow

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"techconnect/internal/catalog"
	"techconnect/internal/clock"
	"techconnect/internal/models"
	"techconnect/internal/notify"
	"techconnect/internal/services"
	"techconnect/internal/storage"
	"techconnect/internal/telemetry"
)

// Akış hataları. Hepsi kullanıcı tarafından telafi edilebilir; her hata
// bir bildirimle yüzeye çıkar ve akış deneme öncesi durumuna döner.
var (
	ErrNotAuthenticated = errors.New("login required")
	ErrProductNotFound  = errors.New("product not found")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrNotOpen          = errors.New("modal is not open")
	ErrSubmitting       = errors.New("submission already in progress")
	ErrCanceled         = errors.New("workflow was reset before completion")
)

// modalState, bir modal akışının durumudur: Closed → Open → Submitting.
type modalState int

const (
	stateClosed modalState = iota
	stateOpen
	stateSubmitting
)

func (s modalState) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Config, sahte gecikme sürelerini tutar. Gerçek bir arka uç olmadığı
// için gönderimler zamanlayıcıyla çözülür.
type Config struct {
	LoginDelay     time.Duration
	PurchaseDelay  time.Duration
	PlanDelay      time.Duration
	CelebrationTTL time.Duration
}

// DefaultConfig, referans davranıştaki gecikmeleri döndürür.
func DefaultConfig() Config {
	return Config{
		LoginDelay:     1500 * time.Millisecond,
		PurchaseDelay:  2000 * time.Millisecond,
		PlanDelay:      1500 * time.Millisecond,
		CelebrationTTL: 5000 * time.Millisecond,
	}
}

// Deps, Controller'ın işbirlikçileridir.
type Deps struct {
	Sessions  *services.SessionManager
	Catalog   *catalog.Catalog
	Email     *services.EmailService
	Store     storage.Store
	Notifier  *notify.Notifier
	Presenter Presenter
	Scheduler clock.Scheduler
}

// PurchaseResult, satın alma gönderiminin sonucudur.
type PurchaseResult struct {
	Record models.PurchaseRecord
	Err    error
}

// Controller, giriş ve satın alma modal akışlarını yönetir. Gecikmeli
// geri çağrılar epoch değeri taşır; akış bu arada sıfırlandıysa geç gelen
// geri çağrı durumu değiştirmez.
type Controller struct {
	mu  sync.Mutex
	cfg Config

	sessions  *services.SessionManager
	catalog   *catalog.Catalog
	email     *services.EmailService
	store     storage.Store
	notifier  *notify.Notifier
	presenter Presenter
	sched     clock.Scheduler

	loginState modalState
	loginEpoch uint64

	purchaseState   modalState
	purchaseEpoch   uint64
	purchaseProduct models.Product
}

// NewController, yeni bir Controller örneği oluşturur.
func NewController(cfg Config, deps Deps) *Controller {
	presenter := deps.Presenter
	if presenter == nil {
		presenter = NopPresenter{}
	}
	return &Controller{
		cfg:       cfg,
		sessions:  deps.Sessions,
		catalog:   deps.Catalog,
		email:     deps.Email,
		store:     deps.Store,
		notifier:  deps.Notifier,
		presenter: presenter,
		sched:     deps.Scheduler,
	}
}

// LoginState, giriş modalının durumunu döndürür.
func (c *Controller) LoginState() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginState.String()
}

// PurchaseState, satın alma modalının durumunu döndürür.
func (c *Controller) PurchaseState() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purchaseState.String()
}

// OpenLogin, giriş modalını açar. Zaten açıksa tekrar göstermek zararsızdır;
// gönderim sürerken açma isteği reddedilir.
func (c *Controller) OpenLogin() error {
	c.mu.Lock()
	if c.loginState == stateSubmitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	c.loginState = stateOpen
	c.loginEpoch++
	c.mu.Unlock()

	c.presenter.ShowLoginModal()
	return nil
}

// CloseLogin, giriş modalını kapatır. Gönderim kesilemez; sürerken kapatma
// isteği reddedilir.
func (c *Controller) CloseLogin() error {
	c.mu.Lock()
	switch c.loginState {
	case stateSubmitting:
		c.mu.Unlock()
		return ErrSubmitting
	case stateClosed:
		c.mu.Unlock()
		return nil
	}
	c.loginState = stateClosed
	c.loginEpoch++
	c.mu.Unlock()

	c.presenter.HideLoginModal()
	return nil
}

// SubmitLogin, giriş formunu gönderir. Yalnızca Open durumunda geçerlidir;
// sonuç, sahte ağ gecikmesinden sonra dönen kanala yazılır.
func (c *Controller) SubmitLogin(email, password string, remember bool) (<-chan error, error) {
	c.mu.Lock()
	switch c.loginState {
	case stateSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitting
	case stateClosed:
		c.mu.Unlock()
		return nil, ErrNotOpen
	}
	c.loginState = stateSubmitting
	epoch := c.loginEpoch
	c.mu.Unlock()

	c.presenter.SetLoginSubmitting(true)

	done := make(chan error, 1)
	c.sched.After(c.cfg.LoginDelay, func() {
		c.finishLogin(epoch, email, password, remember, done)
	})
	return done, nil
}

func (c *Controller) finishLogin(epoch uint64, email, password string, remember bool, done chan<- error) {
	c.mu.Lock()
	if c.loginState != stateSubmitting || c.loginEpoch != epoch {
		c.mu.Unlock()
		log.Printf("Workflow.finishLogin - akış sıfırlanmış, geri çağrı yok sayıldı")
		done <- ErrCanceled
		close(done)
		return
	}
	c.mu.Unlock()

	sess, err := c.sessions.Login(email, password, remember)
	if err != nil {
		telemetry.LoginAttempts.WithLabelValues("failure").Inc()
		log.Printf("Workflow.finishLogin - giriş başarısız: %s", email)

		c.mu.Lock()
		c.loginState = stateOpen
		c.mu.Unlock()

		c.notifier.Notify("Invalid email or password. Please try again.", notify.SeverityError)
		c.presenter.SetLoginSubmitting(false)
		done <- err
		close(done)
		return
	}

	telemetry.LoginAttempts.WithLabelValues("success").Inc()
	log.Printf("Workflow.finishLogin - giriş başarılı: %s", sess.Email)

	c.mu.Lock()
	c.loginState = stateClosed
	c.loginEpoch++
	c.mu.Unlock()

	c.notifier.Notify("Login successful! Welcome back.", notify.SeveritySuccess)
	c.presenter.SetLoginSubmitting(false)
	c.presenter.HideLoginModal()
	c.presenter.SessionChanged(&sess)
	done <- nil
	close(done)
}

// OpenPurchase, ürün için satın alma modalını açar. Giriş yapılmamışsa
// uyarı gösterip giriş modalını açar.
func (c *Controller) OpenPurchase(productID string) error {
	if !c.sessions.IsLoggedIn() {
		c.notifier.Notify("Please login to purchase products.", notify.SeverityWarning)
		if err := c.OpenLogin(); err != nil {
			log.Printf("Workflow.OpenPurchase - giriş modalı açılamadı: %v", err)
		}
		return ErrNotAuthenticated
	}

	product, ok := c.catalog.ProductByID(productID)
	if !ok {
		c.notifier.Notify("Product not found.", notify.SeverityError)
		return ErrProductNotFound
	}

	c.mu.Lock()
	if c.purchaseState == stateSubmitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	c.purchaseState = stateOpen
	c.purchaseProduct = product
	c.purchaseEpoch++
	c.mu.Unlock()

	c.presenter.ShowPurchaseModal(product)
	return nil
}

// ClosePurchase, satın alma modalını kapatır; gönderim sürerken reddedilir.
func (c *Controller) ClosePurchase() error {
	c.mu.Lock()
	switch c.purchaseState {
	case stateSubmitting:
		c.mu.Unlock()
		return ErrSubmitting
	case stateClosed:
		c.mu.Unlock()
		return nil
	}
	c.purchaseState = stateClosed
	c.purchaseProduct = models.Product{}
	c.purchaseEpoch++
	c.mu.Unlock()

	c.presenter.HidePurchaseModal()
	return nil
}

// CloseAll, Escape tuşu ve modal dışına tıklama için ortak kapatmadır.
// Open durumundaki modallar kapanır; gönderimdekiler olduğu gibi kalır.
func (c *Controller) CloseAll() {
	if err := c.CloseLogin(); err != nil {
		log.Printf("Workflow.CloseAll - giriş modalı kapatılamadı: %v", err)
	}
	if err := c.ClosePurchase(); err != nil {
		log.Printf("Workflow.CloseAll - satın alma modalı kapatılamadı: %v", err)
	}
}

// SubmitPurchase, ödeme formunu gönderir. Sipariş kaydı gönderim anındaki
// ürün ve oturum anlık görüntüleriyle kurulur; ödeme alanları girildiği
// gibi saklanır. Gönderim sürerken yeni istekler kuyruklanmaz, reddedilir.
func (c *Controller) SubmitPurchase(payment models.PaymentInfo) (<-chan PurchaseResult, error) {
	c.mu.Lock()
	switch c.purchaseState {
	case stateSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitting
	case stateClosed:
		c.mu.Unlock()
		return nil, ErrNotOpen
	}

	sess, ok := c.sessions.Current()
	if !ok {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}

	record := models.PurchaseRecord{
		OrderID:   NewOrderID(),
		Product:   c.purchaseProduct,
		Customer:  sess,
		Payment:   payment,
		Timestamp: time.Now(),
	}

	c.purchaseState = stateSubmitting
	epoch := c.purchaseEpoch
	c.mu.Unlock()

	c.presenter.SetPurchaseSubmitting(true)

	done := make(chan PurchaseResult, 1)
	c.sched.After(c.cfg.PurchaseDelay, func() {
		c.finishPurchase(epoch, record, done)
	})
	return done, nil
}

func (c *Controller) finishPurchase(epoch uint64, record models.PurchaseRecord, done chan<- PurchaseResult) {
	c.mu.Lock()
	if c.purchaseState != stateSubmitting || c.purchaseEpoch != epoch {
		c.mu.Unlock()
		log.Printf("Workflow.finishPurchase - akış sıfırlanmış, geri çağrı yok sayıldı")
		done <- PurchaseResult{Err: ErrCanceled}
		close(done)
		return
	}
	product := c.purchaseProduct
	c.purchaseState = stateClosed
	c.purchaseProduct = models.Product{}
	c.purchaseEpoch++
	c.mu.Unlock()

	c.appendOrder(record)
	telemetry.OrdersPlaced.Inc()
	log.Printf("Workflow.finishPurchase - sipariş kaydedildi: %s (%s)", record.OrderID, record.Product.ID)

	c.notifier.Notify(fmt.Sprintf("Purchase successful! Order ID: %s", record.OrderID), notify.SeveritySuccess)
	c.presenter.SetPurchaseSubmitting(false)
	c.presenter.HidePurchaseModal()

	c.presenter.ShowCelebration(product)
	c.sched.After(c.cfg.CelebrationTTL, c.presenter.HideCelebration)

	if c.email != nil {
		if err := c.email.SendOrderConfirmation(record); err != nil {
			log.Printf("Workflow.finishPurchase - onay e-postası gönderilemedi: %v", err)
		}
	}

	done <- PurchaseResult{Record: record}
	close(done)
}

// appendOrder, kaydı kalıcı sipariş listesinin sonuna ekler.
func (c *Controller) appendOrder(record models.PurchaseRecord) {
	var orders []models.PurchaseRecord
	c.store.Get(storage.KeyOrders, &orders)
	orders = append(orders, record)
	c.store.Set(storage.KeyOrders, orders)
}

// Orders, kalıcı sipariş listesini döndürür.
func (c *Controller) Orders() []models.PurchaseRecord {
	var orders []models.PurchaseRecord
	c.store.Get(storage.KeyOrders, &orders)
	return orders
}

// SelectPlan, tek adımlık plan seçme akışıdır. Satın almadan farklı olarak
// kalıcı kayıt üretmez; yalnızca bildirim zinciri çalışır.
func (c *Controller) SelectPlan(planID string) error {
	if !c.sessions.IsLoggedIn() {
		c.notifier.Notify("Please login to select a plan.", notify.SeverityWarning)
		if err := c.OpenLogin(); err != nil {
			log.Printf("Workflow.SelectPlan - giriş modalı açılamadı: %v", err)
		}
		return ErrNotAuthenticated
	}

	plan, ok := c.catalog.PlanByID(planID)
	if !ok {
		c.notifier.Notify("Plan not found.", notify.SeverityError)
		return ErrPlanNotFound
	}

	telemetry.PlanSelections.WithLabelValues(plan.ID).Inc()
	c.notifier.Notify(fmt.Sprintf("%s selected! Redirecting to setup...", plan.Name), notify.SeveritySuccess)

	c.sched.After(c.cfg.PlanDelay, func() {
		c.notifier.Notify(fmt.Sprintf("Welcome to %s! Setup will begin shortly.", plan.Name), notify.SeverityInfo)
	})
	return nil
}

// Logout, oturumu ve sepeti temizler; siparişler kalır.
func (c *Controller) Logout() {
	c.sessions.Logout()
	c.notifier.Notify("You have been logged out successfully.", notify.SeverityInfo)
	c.presenter.SessionChanged(nil)
}

// ShowProfile, profil sayfası taslağıdır; yalnızca bildirim gösterir.
func (c *Controller) ShowProfile() {
	c.notifier.Notify("Profile page coming soon!", notify.SeverityInfo)
}

// ShowOrders, sipariş sayısını bildirir.
func (c *Controller) ShowOrders() {
	orders := c.Orders()
	if len(orders) == 0 {
		c.notifier.Notify("No orders found.", notify.SeverityInfo)
		return
	}
	c.notifier.Notify(fmt.Sprintf("You have %d order(s). Check your email for details.", len(orders)), notify.SeverityInfo)
}

// ShowSupport, destek taslağıdır; yalnızca bildirim gösterir.
func (c *Controller) ShowSupport() {
	c.notifier.Notify("Support chat opening...", notify.SeverityInfo)
}

// ShowRegister, kayıt formu taslağıdır; demo girişini hatırlatır.
func (c *Controller) ShowRegister() {
	c.notifier.Notify("Registration form coming soon! For now, use demo login: demo@techconnect.com / demo123", notify.SeverityInfo)
}
