package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/database"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/services/table"
)

// PostgresStore implements Store against the shared pool.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates the store.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateOrder implements Store. The order row, line items, total, and the
// conditional table flip commit together or not at all.
func (s *PostgresStore) CreateOrder(ctx context.Context, tableID int, lines []models.OrderLine, total int64) (*models.Order, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to start transaction", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, database.TableExistsSQL, tableID).Scan(&exists); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to check table", err)
	}
	if !exists {
		return nil, apperr.Newf(apperr.KindNotFound, "table %d not found", tableID)
	}

	order := &models.Order{
		TableID: tableID,
		Status:  models.StatusPending,
		Total:   total,
	}
	err = tx.QueryRow(ctx, database.InsertOrderSQL, tableID, string(models.StatusPending)).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to insert order", err)
	}

	for _, line := range lines {
		if _, err := tx.Exec(ctx, database.InsertOrderItemSQL, order.ID, line.ItemID, line.Quantity, line.Price); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to insert order item", err)
		}
	}

	if _, err := tx.Exec(ctx, database.UpdateOrderTotalSQL, total, order.ID); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update order total", err)
	}

	if _, err := table.MarkOccupiedIfAvailable(ctx, tx, tableID); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update table status", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to commit order", err)
	}
	return order, nil
}

// UpdateOrderStatus implements Store. The read and write are one critical
// section: the row lock serializes racing updates on the same order.
func (s *PostgresStore) UpdateOrderStatus(ctx context.Context, orderID int, next models.OrderStatus) (models.OrderStatus, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "failed to start transaction", err)
	}
	defer tx.Rollback(ctx)

	var rawStatus string
	err = tx.QueryRow(ctx, database.SelectOrderStatusForUpdateSQL, orderID).Scan(&rawStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.Newf(apperr.KindNotFound, "order %d not found", orderID)
	}
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "failed to read order status", err)
	}

	oldStatus := models.OrderStatus(rawStatus)
	if err := models.CanTransition(oldStatus, next); err != nil {
		return "", err
	}

	if _, err := tx.Exec(ctx, database.UpdateOrderStatusSQL, string(next), orderID); err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "failed to update order status", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "failed to commit status update", err)
	}
	return oldStatus, nil
}

// OrderView implements Store.
func (s *PostgresStore) OrderView(ctx context.Context, orderID int) (*models.OrderView, error) {
	view, err := scanOrderView(s.db.QueryRow(ctx, database.OrderViewSQL, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Newf(apperr.KindNotFound, "order %d not found", orderID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load order view", err)
	}
	return view, nil
}

// OrderDetail implements Store.
func (s *PostgresStore) OrderDetail(ctx context.Context, orderID int) (*models.OrderDetail, error) {
	view, err := s.OrderView(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, database.OrderItemsSQL, orderID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load order items", err)
	}
	defer rows.Close()

	detail := &models.OrderDetail{OrderView: *view, Items: []models.OrderItem{}}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan order item", err)
		}
		detail.Items = append(detail.Items, item)
	}
	return detail, rows.Err()
}

// OpenOrders implements Store.
func (s *PostgresStore) OpenOrders(ctx context.Context) ([]models.OrderView, error) {
	return s.queryViews(ctx, database.OpenOrdersSQL)
}

// OrdersByTable implements Store.
func (s *PostgresStore) OrdersByTable(ctx context.Context, tableID int) ([]models.OrderView, error) {
	return s.queryViews(ctx, database.OrdersByTableSQL, tableID)
}

func (s *PostgresStore) queryViews(ctx context.Context, sql string, args ...interface{}) ([]models.OrderView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to query orders", err)
	}
	defer rows.Close()

	var views []models.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan order", err)
		}
		views = append(views, *view)
	}
	return views, rows.Err()
}

func scanOrderView(row pgx.Row) (*models.OrderView, error) {
	var view models.OrderView
	err := row.Scan(
		&view.ID,
		&view.TableID,
		&view.Status,
		&view.Total,
		&view.CreatedAt,
		&view.TableNumber,
		&view.LocationName,
		&view.LocationAddress,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
