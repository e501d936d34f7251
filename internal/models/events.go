package models

import "time"

// Event types fanned out to admin observers
const (
	EventNewOrder           = "new-order"
	EventOrderStatusUpdated = "order-status-updated"
	EventPaymentCompleted   = "payment-completed"
)

// AdminGroup is the broadcast group dashboards join to receive events.
const AdminGroup = "admin"

// StatusUpdatedEvent is the order-status-updated payload: the joined order
// view plus the old and new statuses.
type StatusUpdatedEvent struct {
	OrderView
	OldStatus OrderStatus `json:"oldStatus"`
	NewStatus OrderStatus `json:"newStatus"`
}

// PaymentCompletedEvent is the payment-completed payload.
type PaymentCompletedEvent struct {
	OrderID     int           `json:"orderId"`
	TableNumber int           `json:"tableNumber"`
	Amount      int64         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	PaymentID   int           `json:"paymentId"`
	PaidAt      time.Time     `json:"paidAt"`
}
