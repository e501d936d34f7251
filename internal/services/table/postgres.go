package table

import (
	"context"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/database"
	"trinh-cafe/internal/models"
)

// PostgresStore implements Store against the shared pool.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates the store.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// SetTableStatus implements Store.
func (s *PostgresStore) SetTableStatus(ctx context.Context, tableID int, status models.TableStatus) error {
	tag, err := s.db.Pool.Exec(ctx, database.UpdateTableStatusSQL, string(status), tableID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update table status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Newf(apperr.KindNotFound, "table %d not found", tableID)
	}
	return nil
}

// ListTables implements Store.
func (s *PostgresStore) ListTables(ctx context.Context, locationID *int) ([]models.Table, error) {
	rows, err := s.db.Query(ctx, database.ListTablesSQL, locationID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list tables", err)
	}
	defer rows.Close()

	var tables []models.Table
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.LocationID, &t.TableNumber, &t.Status); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan table", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// ListLocations implements Store.
func (s *PostgresStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := s.db.Query(ctx, database.ListLocationsSQL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list locations", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.Address); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan location", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
