package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/events"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

type fakeOrder struct {
	total       int64
	status      models.OrderStatus
	tableNumber int
}

// fakeStore mirrors the finalization rules: payable statuses only, at most
// one payment per order, amount copied from the order total.
type fakeStore struct {
	orders   map[int]*fakeOrder
	payments []models.Payment
	nextID   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders: map[int]*fakeOrder{
			7: {total: 105000, status: models.StatusServed, tableNumber: 3},
			8: {total: 30000, status: models.StatusPending, tableNumber: 4},
			9: {total: 45000, status: models.StatusReady, tableNumber: 5},
		},
		nextID: 1,
	}
}

func (s *fakeStore) FinalizePayment(ctx context.Context, orderID int, method models.PaymentMethod) (*models.Payment, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, apperr.Newf(apperr.KindNotFound, "order %d not found", orderID)
	}
	if order.status == models.StatusPaid {
		return nil, apperr.New(apperr.KindAlreadyPaid, "Order is already paid")
	}
	if !order.status.Payable() {
		return nil, apperr.InvalidState("Order cannot be paid yet",
			string(order.status), models.PayableStatuses)
	}

	payment := models.Payment{
		ID:          s.nextID,
		OrderID:     orderID,
		TableNumber: order.tableNumber,
		Amount:      order.total,
		Method:      method,
		Status:      models.PaymentCompleted,
		PaidAt:      time.Now(),
	}
	s.nextID++
	s.payments = append(s.payments, payment)
	order.status = models.StatusPaid
	return &payment, nil
}

func (s *fakeStore) PaymentHistory(ctx context.Context, limit, offset int) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	for _, p := range s.payments {
		records = append(records, models.PaymentRecord{
			ID: p.ID, Amount: p.Amount, Method: p.Method, Status: p.Status,
			PaidAt: p.PaidAt, OrderID: p.OrderID, TableNumber: p.TableNumber,
		})
	}
	return records, nil
}

func newTestService(t *testing.T, store *fakeStore) (*Service, *events.Hub) {
	t.Helper()
	hub := events.NewHub(logger.New("test"))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return NewService(store, hub, logger.New("test")), hub
}

func TestFinalizeServedOrder(t *testing.T) {
	store := newFakeStore()
	service, hub := newTestService(t, store)

	sub := hub.Subscribe(models.AdminGroup)
	defer hub.Unsubscribe(sub)

	payment, err := service.Finalize(context.Background(),
		&models.FinalizePaymentRequest{OrderID: 7, Method: "cash"}, "req-1")
	if err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	if payment.Amount != 105000 {
		t.Errorf("amount = %d, want order total 105000", payment.Amount)
	}
	if payment.Method != models.MethodCash {
		t.Errorf("method = %s, want cash", payment.Method)
	}
	if store.orders[7].status != models.StatusPaid {
		t.Errorf("order status = %s, want paid", store.orders[7].status)
	}

	select {
	case ev := <-sub.Events():
		if ev.Type != models.EventPaymentCompleted {
			t.Fatalf("event type = %q, want %q", ev.Type, models.EventPaymentCompleted)
		}
		payload, ok := ev.Payload.(*models.PaymentCompletedEvent)
		if !ok {
			t.Fatalf("payload type %T, want *models.PaymentCompletedEvent", ev.Payload)
		}
		if payload.OrderID != 7 || payload.Amount != 105000 || payload.TableNumber != 3 {
			t.Errorf("payload = %+v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for payment-completed event")
	}
}

func TestFinalizeReadyOrder(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(t, store)

	payment, err := service.Finalize(context.Background(),
		&models.FinalizePaymentRequest{OrderID: 9, Method: "card"}, "req-1")
	if err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}
	if payment.Amount != 45000 {
		t.Errorf("amount = %d, want 45000", payment.Amount)
	}
}

func TestFinalizeTwiceIsRejected(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(t, store)

	req := &models.FinalizePaymentRequest{OrderID: 7, Method: "cash"}
	if _, err := service.Finalize(context.Background(), req, "req-1"); err != nil {
		t.Fatalf("first Finalize() unexpected error: %v", err)
	}

	_, err := service.Finalize(context.Background(), req, "req-2")
	if !apperr.IsKind(err, apperr.KindAlreadyPaid) {
		t.Fatalf("expected already_paid, got %v", err)
	}
	if len(store.payments) != 1 {
		t.Errorf("stored %d payments, want 1", len(store.payments))
	}
}

func TestFinalizePendingOrderIsRejected(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(t, store)

	_, err := service.Finalize(context.Background(),
		&models.FinalizePaymentRequest{OrderID: 8, Method: "cash"}, "req-1")
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	var e *apperr.Error
	if !errors.As(err, &e) {
		t.Fatal("expected *apperr.Error")
	}
	if e.CurrentStatus != "pending" {
		t.Errorf("CurrentStatus = %q, want pending", e.CurrentStatus)
	}
	if e.RequiredStatus != models.PayableStatuses {
		t.Errorf("RequiredStatus = %q, want %q", e.RequiredStatus, models.PayableStatuses)
	}
	if len(store.payments) != 0 {
		t.Errorf("stored %d payments, want 0", len(store.payments))
	}
}

func TestFinalizeValidation(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(t, store)

	tests := []struct {
		name string
		req  models.FinalizePaymentRequest
		kind apperr.Kind
	}{
		{"missing order id", models.FinalizePaymentRequest{Method: "cash"}, apperr.KindInvalidArgument},
		{"bad method", models.FinalizePaymentRequest{OrderID: 7, Method: "bitcoin"}, apperr.KindInvalidArgument},
		{"unknown order", models.FinalizePaymentRequest{OrderID: 404, Method: "cash"}, apperr.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Finalize(context.Background(), &tt.req, "req-1")
			if !apperr.IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestHistoryLimitDefaults(t *testing.T) {
	store := newFakeStore()
	service, _ := newTestService(t, store)

	if _, err := service.History(context.Background(), -5, -1); err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if _, err := service.History(context.Background(), 1000, 0); err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
}
