// Package catalog resolves menu item ids to current prices for the order
// engine. Prices are read-only here; the menu service owns catalog writes.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/database"
)

// Gateway resolves an item id to its current price in minor currency units.
type Gateway interface {
	GetPrice(ctx context.Context, itemID int) (int64, error)
	// InvalidatePrice drops any cached price for the item after a catalog write.
	InvalidatePrice(ctx context.Context, itemID int) error
}

// PostgresGateway resolves prices straight from the items table.
type PostgresGateway struct {
	db *database.DB
}

// NewPostgresGateway creates a store-backed gateway.
func NewPostgresGateway(db *database.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

// GetPrice implements Gateway.
func (g *PostgresGateway) GetPrice(ctx context.Context, itemID int) (int64, error) {
	var price int64
	err := g.db.QueryRow(ctx, database.ItemPriceSQL, itemID).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.Newf(apperr.KindNotFound, "item %d not found", itemID)
	}
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, fmt.Sprintf("failed to resolve price for item %d", itemID), err)
	}
	return price, nil
}

// InvalidatePrice implements Gateway. Nothing to invalidate without a cache.
func (g *PostgresGateway) InvalidatePrice(ctx context.Context, itemID int) error {
	return nil
}
