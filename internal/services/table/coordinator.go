// Package table keeps table occupancy consistent with order activity and
// exposes the administrative table endpoints.
package table

import (
	"context"

	"github.com/jackc/pgx/v5"

	"trinh-cafe/internal/database"
)

// MarkOccupiedIfAvailable flips a table to occupied only if it is currently
// available. It runs inside the order-creation transaction so two
// near-simultaneous orders on the same table cannot both claim the flip: the
// conditional WHERE makes the loser a no-op, never an error. Returns whether
// this call performed the transition.
func MarkOccupiedIfAvailable(ctx context.Context, tx pgx.Tx, tableID int) (bool, error) {
	tag, err := tx.Exec(ctx, database.MarkTableOccupiedSQL, tableID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
