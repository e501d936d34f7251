package table

import (
	"context"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

// Store is the persistence surface the table service needs.
type Store interface {
	SetTableStatus(ctx context.Context, tableID int, status models.TableStatus) error
	ListTables(ctx context.Context, locationID *int) ([]models.Table, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// Service handles administrative table management. The occupied-on-order
// transition never goes through here; it belongs to the order engine.
type Service struct {
	store  Store
	logger *logger.Logger
}

// NewService creates a table service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{store: store, logger: log}
}

// SetStatus applies an explicit administrative status change.
func (s *Service) SetStatus(ctx context.Context, tableID int, rawStatus, requestID string) error {
	status, err := models.ParseTableStatus(rawStatus)
	if err != nil {
		return err
	}
	if tableID <= 0 {
		return apperr.New(apperr.KindInvalidArgument, "invalid table ID")
	}

	if err := s.store.SetTableStatus(ctx, tableID, status); err != nil {
		return err
	}

	s.logger.Info("table_status_updated", "Table status updated", requestID, map[string]interface{}{
		"table_id": tableID,
		"status":   string(status),
	})
	return nil
}

// Tables lists tables, optionally filtered by location.
func (s *Service) Tables(ctx context.Context, locationID *int) ([]models.Table, error) {
	return s.store.ListTables(ctx, locationID)
}

// Locations lists café branches.
func (s *Service) Locations(ctx context.Context) ([]models.Location, error) {
	return s.store.ListLocations(ctx)
}
