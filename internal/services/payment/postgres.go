package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

// FinalizePayment implements Store. The status read locks the order row, so
// two racing payments serialize and the second one sees paid. There is no
// window where a payment exists without the order marked paid.
func (s *PostgresStore) FinalizePayment(ctx context.Context, orderID int, method models.PaymentMethod) (*models.Payment, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to start transaction", err)
	}
	defer tx.Rollback(ctx)

	var (
		id          int
		total       int64
		rawStatus   string
		tableNumber int
	)
	err = tx.QueryRow(ctx, database.SelectOrderForPaymentSQL, orderID).
		Scan(&id, &total, &rawStatus, &tableNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Newf(apperr.KindNotFound, "order %d not found", orderID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to read order", err)
	}

	status := models.OrderStatus(rawStatus)
	if status == models.StatusPaid {
		return nil, apperr.New(apperr.KindAlreadyPaid, "Order is already paid")
	}
	if !status.Payable() {
		return nil, apperr.InvalidState("Order cannot be paid yet", string(status), models.PayableStatuses)
	}

	payment := &models.Payment{
		OrderID:     orderID,
		TableNumber: tableNumber,
		Amount:      total,
		Method:      method,
		Status:      models.PaymentCompleted,
	}
	err = tx.QueryRow(ctx, database.InsertPaymentSQL, orderID, total, string(method), string(models.PaymentCompleted)).
		Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to insert payment", err)
	}

	if _, err := tx.Exec(ctx, database.UpdateOrderStatusSQL, string(models.StatusPaid), orderID); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to mark order paid", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to commit payment", err)
	}
	return payment, nil
}

// PaymentHistory implements Store.
func (s *PostgresStore) PaymentHistory(ctx context.Context, limit, offset int) ([]models.PaymentRecord, error) {
	rows, err := s.db.Query(ctx, database.PaymentHistorySQL, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to query payments", err)
	}
	defer rows.Close()

	var records []models.PaymentRecord
	for rows.Next() {
		var rec models.PaymentRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Amount,
			&rec.Method,
			&rec.Status,
			&rec.PaidAt,
			&rec.OrderID,
			&rec.OrderTotal,
			&rec.TableNumber,
		)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan payment", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
