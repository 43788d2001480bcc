package models

import "time"

// Session, giriş yapmış kullanıcıyı temsil eder.
// Name is derived from the local part of the email on login.
type Session struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"login_time"`
}

// Product, satın alınabilir bir cihazı temsil eder.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Image    string   `json:"image"`
	Features []string `json:"features"`
}

// Plan, aylık internet paketini temsil eder.
type Plan struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Speed string  `json:"speed"`
}

// PaymentInfo holds the card fields exactly as the customer entered them.
// Only shape checks apply; there is no payment backend.
type PaymentInfo struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// PurchaseRecord, tamamlanmış bir siparişi temsil eder.
// Product and Customer are snapshots taken at submit time, not live references.
type PurchaseRecord struct {
	OrderID   string      `json:"order_id"`
	Product   Product     `json:"product"`
	Customer  Session     `json:"customer"`
	Payment   PaymentInfo `json:"payment_info"`
	Timestamp time.Time   `json:"timestamp"`
}

// CartItem, sepet öğesini temsil eder.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
