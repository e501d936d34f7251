// Package payment finalizes payments: the only path by which an order
// reaches the paid status.
package payment

import (
	"context"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/events"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

// Store is the persistence surface the payment finalizer needs.
type Store interface {
	// FinalizePayment checks payability, inserts the payment row with the
	// order's total, and flips the order to paid, all in one transaction.
	FinalizePayment(ctx context.Context, orderID int, method models.PaymentMethod) (*models.Payment, error)

	PaymentHistory(ctx context.Context, limit, offset int) ([]models.PaymentRecord, error)
}

// Service validates payment requests and fans out the completion event.
type Service struct {
	store  Store
	hub    *events.Hub
	logger *logger.Logger
}

// NewService creates a payment service.
func NewService(store Store, hub *events.Hub, log *logger.Logger) *Service {
	return &Service{store: store, hub: hub, logger: log}
}

// Finalize performs the terminal payment transition for an order. At most
// one payment ever succeeds per order; repeats get AlreadyPaid.
func (s *Service) Finalize(ctx context.Context, req *models.FinalizePaymentRequest, requestID string) (*models.Payment, error) {
	if req.OrderID <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "order_id is required")
	}
	method, err := models.ParsePaymentMethod(req.Method)
	if err != nil {
		return nil, err
	}

	payment, err := s.store.FinalizePayment(ctx, req.OrderID, method)
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment_completed", "Payment completed", requestID, map[string]interface{}{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
		"method":     string(payment.Method),
	})

	s.hub.Publish(models.AdminGroup, events.Event{
		Type: models.EventPaymentCompleted,
		Payload: &models.PaymentCompletedEvent{
			OrderID:     payment.OrderID,
			TableNumber: payment.TableNumber,
			Amount:      payment.Amount,
			Method:      payment.Method,
			PaymentID:   payment.ID,
			PaidAt:      payment.PaidAt,
		},
	})

	return payment, nil
}

// History lists past payments, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]models.PaymentRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.PaymentHistory(ctx, limit, offset)
}
