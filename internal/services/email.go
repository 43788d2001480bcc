package services

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"

	"techconnect/internal/models"
)

// EmailService, e-posta gönderimi için kullanılır
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService, yeni bir EmailService örneği oluşturur
func NewEmailService() *EmailService {
	smtpHost := "smtp.gmail.com"
	smtpPort := 587
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	// Eğer environment variable'lar ayarlanmamışsa, test modunda çalış
	if smtpUser == "" || smtpPass == "" {
		log.Println("SMTP bilgileri ayarlanmamış. E-posta gönderimi devre dışı.")
		return &EmailService{
			dialer: nil,
			from:   "noreply@techconnect.com",
		}
	}

	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)

	return &EmailService{
		dialer: dialer,
		from:   smtpUser,
	}
}

// SendOrderConfirmation, sipariş onay e-postası gönderir. Gönderim
// "best effort" çalışır; satın alma akışını asla bloklamaz.
func (es *EmailService) SendOrderConfirmation(record models.PurchaseRecord) error {
	if es.dialer == nil {
		log.Printf("E-posta gönderimi devre dışı. Sipariş onayı: %s", record.OrderID)
		return nil
	}

	subject := fmt.Sprintf("Order Confirmation %s - TechConnect", record.OrderID)
	body := fmt.Sprintf(`
		<h2>Purchase Successful!</h2>
		<p>Hi %s,</p>
		<p>Thank you for purchasing <strong>%s</strong>.</p>
		<p>Order ID: <strong>%s</strong></p>
		<p>Total: $%.2f</p>
		<br>
		<p>TechConnect Team</p>
	`, record.Customer.Name, record.Product.Name, record.OrderID, record.Product.Price)

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", record.Customer.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		log.Printf("Sipariş onay e-postası gönderilemedi: %v", err)
		return err
	}

	log.Printf("Sipariş onay e-postası gönderildi: %s", record.Customer.Email)
	return nil
}
