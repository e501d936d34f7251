package table

import (
	"context"
	"testing"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

type fakeStore struct {
	tables map[int]models.TableStatus
}

func (s *fakeStore) SetTableStatus(ctx context.Context, tableID int, status models.TableStatus) error {
	if _, ok := s.tables[tableID]; !ok {
		return apperr.Newf(apperr.KindNotFound, "table %d not found", tableID)
	}
	s.tables[tableID] = status
	return nil
}

func (s *fakeStore) ListTables(ctx context.Context, locationID *int) ([]models.Table, error) {
	var tables []models.Table
	for id, status := range s.tables {
		tables = append(tables, models.Table{ID: id, Status: status})
	}
	return tables, nil
}

func (s *fakeStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	return []models.Location{{ID: 1, Code: "Q1", Name: "District 1"}}, nil
}

func newTestService() (*Service, *fakeStore) {
	store := &fakeStore{tables: map[int]models.TableStatus{3: models.TableOccupied}}
	return NewService(store, logger.New("test")), store
}

func TestSetStatus(t *testing.T) {
	service, store := newTestService()

	if err := service.SetStatus(context.Background(), 3, "available", "req-1"); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}
	if store.tables[3] != models.TableAvailable {
		t.Errorf("status = %s, want available", store.tables[3])
	}
}

func TestSetStatusValidation(t *testing.T) {
	service, _ := newTestService()

	tests := []struct {
		name    string
		tableID int
		status  string
		kind    apperr.Kind
	}{
		{"bad status", 3, "broken", apperr.KindInvalidArgument},
		{"bad id", 0, "available", apperr.KindInvalidArgument},
		{"unknown table", 42, "available", apperr.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.SetStatus(context.Background(), tt.tableID, tt.status, "req-1")
			if !apperr.IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
		})
	}
}
