// Package order owns order creation and the order-status state machine.
package order

import (
	"context"

	"trinh-cafe/internal/catalog"
	"trinh-cafe/internal/events"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

// Store is the persistence surface the order engine needs. CreateOrder and
// UpdateOrderStatus are transactional: either every effect is visible or
// none is.
type Store interface {
	// CreateOrder atomically inserts the order row, its line items, the
	// computed total, and the conditional available→occupied table flip.
	CreateOrder(ctx context.Context, tableID int, lines []models.OrderLine, total int64) (*models.Order, error)

	// UpdateOrderStatus moves an order to next under row-level locking,
	// applying the transition policy, and returns the previous status.
	UpdateOrderStatus(ctx context.Context, orderID int, next models.OrderStatus) (models.OrderStatus, error)

	OrderView(ctx context.Context, orderID int) (*models.OrderView, error)
	OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error)
	OpenOrders(ctx context.Context) ([]models.OrderView, error)
	OrdersByTable(ctx context.Context, tableID int) ([]models.OrderView, error)
}

// Service is the order engine.
type Service struct {
	store   Store
	catalog catalog.Gateway
	hub     *events.Hub
	logger  *logger.Logger
}

// NewService creates an order service.
func NewService(store Store, gateway catalog.Gateway, hub *events.Hub, log *logger.Logger) *Service {
	return &Service{
		store:   store,
		catalog: gateway,
		hub:     hub,
		logger:  log,
	}
}

// CreateOrder resolves every item price, persists the order atomically, and
// emits a new-order event on commit. Callers observe either a complete,
// fully-priced order or nothing.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.CreateOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Snapshot prices before opening the transaction. An unresolvable item
	// fails the whole request with nothing persisted.
	lines := make([]models.OrderLine, 0, len(req.Items))
	var total int64
	for _, item := range req.Items {
		price, err := s.catalog.GetPrice(ctx, item.ItemID)
		if err != nil {
			return nil, err
		}
		line := models.OrderLine{ItemID: item.ItemID, Quantity: item.Quantity, Price: price}
		lines = append(lines, line)
		total += line.Subtotal()
	}

	created, err := s.store.CreateOrder(ctx, req.TableID, lines, total)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_created", "Order created", requestID, map[string]interface{}{
		"order_id": created.ID,
		"table_id": created.TableID,
		"total":    created.Total,
	})

	s.emitNewOrder(ctx, created.ID, requestID)

	return &models.CreateOrderResponse{ID: created.ID, Total: created.Total}, nil
}

// UpdateStatus applies a status transition and emits order-status-updated.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, rawStatus, requestID string) (*models.UpdateStatusResponse, error) {
	newStatus, err := models.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	oldStatus, err := s.store.UpdateOrderStatus(ctx, orderID, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_status_updated", "Order status updated", requestID, map[string]interface{}{
		"order_id":   orderID,
		"old_status": string(oldStatus),
		"new_status": string(newStatus),
	})

	s.emitStatusUpdated(ctx, orderID, oldStatus, newStatus, requestID)

	return &models.UpdateStatusResponse{
		OK:        true,
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}, nil
}

// OpenOrders lists orders that are neither paid nor cancelled, newest first.
func (s *Service) OpenOrders(ctx context.Context) ([]models.OrderView, error) {
	return s.store.OpenOrders(ctx)
}

// OrdersByTable lists a table's orders, newest first.
func (s *Service) OrdersByTable(ctx context.Context, tableID int) ([]models.OrderView, error) {
	return s.store.OrdersByTable(ctx, tableID)
}

// OrderDetail returns one order with its line items.
func (s *Service) OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error) {
	return s.store.OrderDetail(ctx, orderID)
}

// emitNewOrder publishes the joined order view. Event failures are logged
// and swallowed; the committed order is the truth.
func (s *Service) emitNewOrder(ctx context.Context, orderID int, requestID string) {
	view, err := s.store.OrderView(ctx, orderID)
	if err != nil {
		s.logger.Error("event_view_failed", "Failed to load order view for event", requestID, err,
			map[string]interface{}{"order_id": orderID})
		return
	}
	s.hub.Publish(models.AdminGroup, events.Event{Type: models.EventNewOrder, Payload: view})
}

func (s *Service) emitStatusUpdated(ctx context.Context, orderID int, oldStatus, newStatus models.OrderStatus, requestID string) {
	view, err := s.store.OrderView(ctx, orderID)
	if err != nil {
		s.logger.Error("event_view_failed", "Failed to load order view for event", requestID, err,
			map[string]interface{}{"order_id": orderID})
		return
	}
	s.hub.Publish(models.AdminGroup, events.Event{
		Type: models.EventOrderStatusUpdated,
		Payload: &models.StatusUpdatedEvent{
			OrderView: *view,
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
}
