package handlers

import (
	"errors"
	"log"
	"net/http"

	"techconnect/internal/catalog"
	"techconnect/internal/forms"
	"techconnect/internal/models"
	"techconnect/internal/notify"
	"techconnect/internal/services"
	"techconnect/internal/workflow"

	"github.com/gin-gonic/gin"
)

// Handler, HTTP isteklerini akış çekirdeğine bağlar. Sayfa/UI işbirlikçisinin
// çağırdığı operasyon yüzeyinin JSON karşılığıdır.
type Handler struct {
	wf       *workflow.Controller
	catalog  *catalog.Catalog
	sessions *services.SessionManager
	notifier *notify.Notifier
	cart     *services.CartService
}

// NewHandler, yeni bir Handler örneği oluşturur.
func NewHandler(wf *workflow.Controller, cat *catalog.Catalog, sessions *services.SessionManager, notifier *notify.Notifier, cart *services.CartService) *Handler {
	return &Handler{
		wf:       wf,
		catalog:  cat,
		sessions: sessions,
		notifier: notifier,
		cart:     cart,
	}
}

// RegisterRoutes, operasyon yüzeyini router'a bağlar.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/healthz", h.Healthz)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/plans", h.ListPlans)

	r.POST("/login", h.HandleLogin)
	r.POST("/logout", h.HandleLogout)
	r.GET("/session", h.GetSession)

	r.POST("/purchase/:id", h.HandlePurchase)
	r.POST("/plans/:id/select", h.HandleSelectPlan)
	r.GET("/orders", h.GetOrders)

	r.POST("/validate", h.ValidateField)
	r.POST("/format", h.FormatField)

	r.GET("/notification", h.GetNotification)
	r.DELETE("/notification", h.DismissNotification)
	r.POST("/modals/close", h.CloseModals)

	r.GET("/cart/count", h.GetCartCount)

	r.GET("/profile", h.ShowProfile)
	r.GET("/my-orders", h.ShowOrders)
	r.GET("/support", h.ShowSupport)
	r.GET("/register", h.ShowRegister)
}

func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":  "TechConnect Pro Storefront",
		"products": len(h.catalog.Products()),
		"plans":    len(h.catalog.Plans()),
	})
}

func (h *Handler) Healthz(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Products())
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Plans())
}

// LoginForm, giriş isteğinin gövdesidir.
type LoginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// HandleLogin, giriş akışını uçtan uca çalıştırır: modalı açar, formu
// gönderir ve sahte gecikmenin sonucunu bekler.
func (h *Handler) HandleLogin(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("HandleLogin - giriş denemesi: %s", form.Email)

	if err := h.wf.OpenLogin(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	done, err := h.wf.SubmitLogin(form.Email, form.Password, form.Remember)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := <-done; err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password. Please try again."})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	sess, _ := h.sessions.Current()
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful! Welcome back.",
		"session": sess,
	})
}

func (h *Handler) HandleLogout(c *gin.Context) {
	h.wf.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully."})
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in."})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// PurchaseForm, ödeme alanlarını girildiği gibi taşır. Şekil denetimi
// /validate ucundan ayrıca yapılır; gönderim alanları bloklamaz.
type PurchaseForm struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// HandlePurchase, satın alma akışını uçtan uca çalıştırır: modalı ürünle
// açar, ödeme formunu gönderir ve sonucu bekler.
func (h *Handler) HandlePurchase(c *gin.Context) {
	var form PurchaseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID := c.Param("id")
	log.Printf("HandlePurchase - ürün: %s", productID)

	if err := h.wf.OpenPurchase(productID); err != nil {
		switch {
		case errors.Is(err, workflow.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to purchase products."})
		case errors.Is(err, workflow.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		}
		return
	}

	payment := models.PaymentInfo{
		CardName:   form.CardName,
		CardNumber: form.CardNumber,
		Expiry:     form.Expiry,
		CVV:        form.CVV,
	}

	done, err := h.wf.SubmitPurchase(payment)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	res := <-done
	if res.Err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": res.Err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Purchase successful! Order ID: " + res.Record.OrderID,
		"order_id": res.Record.OrderID,
		"order":    res.Record,
	})
}

func (h *Handler) HandleSelectPlan(c *gin.Context) {
	planID := c.Param("id")

	if err := h.wf.SelectPlan(planID); err != nil {
		switch {
		case errors.Is(err, workflow.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to select a plan."})
		case errors.Is(err, workflow.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found."})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		}
		return
	}

	plan, _ := h.catalog.PlanByID(planID)
	c.JSON(http.StatusOK, gin.H{"message": plan.Name + " selected! Redirecting to setup..."})
}

func (h *Handler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.wf.Orders())
}

// FieldForm, tek alanlık doğrulama/biçimleme isteğidir.
type FieldForm struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ValidateField, alanı şekil kurallarına göre denetler. Geçersiz alan
// gönderimi bloklamaz; yalnızca satır içi mesaj üretir.
func (h *Handler) ValidateField(c *gin.Context) {
	var form FieldForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := forms.Check(form.Field, form.Value); err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "message": verr.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// FormatField, tuş vuruşu biçimleyicisinin karşılığıdır.
func (h *Handler) FormatField(c *gin.Context) {
	var form FieldForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	formatted := form.Value
	switch form.Field {
	case "cardNumber":
		formatted = forms.FormatCardNumber(form.Value)
	case "expiry":
		formatted = forms.FormatExpiry(form.Value)
	case "cvv":
		formatted = forms.FormatCVV(form.Value)
	}
	c.JSON(http.StatusOK, gin.H{"formatted": formatted})
}

func (h *Handler) GetNotification(c *gin.Context) {
	n, ok := h.notifier.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) DismissNotification(c *gin.Context) {
	h.notifier.Dismiss()
	c.Status(http.StatusNoContent)
}

// CloseModals, Escape/dışarı tıklama davranışının karşılığıdır.
func (h *Handler) CloseModals(c *gin.Context) {
	h.wf.CloseAll()
	c.JSON(http.StatusOK, gin.H{
		"login_modal":    h.wf.LoginState(),
		"purchase_modal": h.wf.PurchaseState(),
	})
}

func (h *Handler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.cart.Count()})
}

func (h *Handler) ShowProfile(c *gin.Context) {
	h.wf.ShowProfile()
	h.respondWithNotification(c)
}

func (h *Handler) ShowOrders(c *gin.Context) {
	h.wf.ShowOrders()
	h.respondWithNotification(c)
}

func (h *Handler) ShowSupport(c *gin.Context) {
	h.wf.ShowSupport()
	h.respondWithNotification(c)
}

func (h *Handler) ShowRegister(c *gin.Context) {
	h.wf.ShowRegister()
	h.respondWithNotification(c)
}

func (h *Handler) respondWithNotification(c *gin.Context) {
	n, ok := h.notifier.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": n.Message, "severity": n.Severity})
}
