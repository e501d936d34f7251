package models

import "time"

// PaymentStatus represents the status of a payment row
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
)

// Payment is a finalized payment for one order. Amount is copied from the
// order total at finalization time, never supplied by the caller.
type Payment struct {
	ID          int           `json:"id"`
	OrderID     int           `json:"orderId"`
	TableNumber int           `json:"tableNumber"`
	Amount      int64         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"-"`
	PaidAt      time.Time     `json:"paidAt"`
}

// FinalizePaymentRequest is the payment input payload
type FinalizePaymentRequest struct {
	OrderID int    `json:"order_id"`
	Method  string `json:"method"`
}

// PaymentRecord is one row of the payment history listing.
type PaymentRecord struct {
	ID          int           `json:"id"`
	Amount      int64         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"status"`
	PaidAt      time.Time     `json:"paid_at"`
	OrderID     int           `json:"order_id"`
	OrderTotal  int64         `json:"order_total"`
	TableNumber int           `json:"table_number"`
}
