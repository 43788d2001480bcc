package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// Form alanı doğrulama kuralları. Sadece şekil kontrolü yapılır;
// gerçek bir ödeme altyapısı olmadığı için anlamsal kontrol yoktur
// (örneğin geçmiş bir son kullanma tarihi kabul edilir).

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// ValidEmail, e-posta adresinin local@domain.tld şeklinde olup olmadığını kontrol eder.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPassword, parolanın en az 6 karakter olup olmadığını kontrol eder.
func ValidPassword(password string) bool {
	return len(strings.TrimSpace(password)) >= 6
}

// ValidCardNumber, boşluklar atıldıktan sonra 13-19 haneli rakam dizisi bekler.
func ValidCardNumber(cardNumber string) bool {
	cleaned := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	return len(cleaned) >= 13 && len(cleaned) <= 19 && digitsRegex.MatchString(cleaned)
}

// ValidExpiry, son kullanma tarihinin tam olarak MM/YY biçiminde olmasını bekler.
func ValidExpiry(expiry string) bool {
	return expiryRegex.MatchString(strings.TrimSpace(expiry))
}

// ValidCVV, 3 veya 4 haneli güvenlik kodu bekler.
func ValidCVV(cvv string) bool {
	return cvvRegex.MatchString(strings.TrimSpace(cvv))
}

// ValidationError, bir form alanının doğrulamadan geçemediğini belirtir.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Check, alan adına göre ilgili doğrulayıcıyı çalıştırır ve kullanıcıya
// gösterilecek mesajla birlikte hata döndürür. Bilinmeyen alanlar geçerli sayılır.
func Check(field, value string) error {
	switch field {
	case "email":
		if !ValidEmail(value) {
			return &ValidationError{Field: field, Message: "Please enter a valid email address"}
		}
	case "password":
		if !ValidPassword(value) {
			return &ValidationError{Field: field, Message: "Password must be at least 6 characters"}
		}
	case "cardNumber":
		if !ValidCardNumber(value) {
			return &ValidationError{Field: field, Message: "Please enter a valid card number"}
		}
	case "expiry":
		if !ValidExpiry(value) {
			return &ValidationError{Field: field, Message: "Please enter a valid expiry date (MM/YY)"}
		}
	case "cvv":
		if !ValidCVV(value) {
			return &ValidationError{Field: field, Message: "Please enter a valid CVV"}
		}
	}
	return nil
}
