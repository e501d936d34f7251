package menu

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

func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.Query(ctx, database.ListCategoriesSQL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list categories", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	err := s.db.QueryRow(ctx, database.InsertCategorySQL, name).Scan(&category.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to insert category", err)
	}
	return category, nil
}

func (s *PostgresStore) UpdateCategory(ctx context.Context, id int, name string) error {
	tag, err := s.db.Pool.Exec(ctx, database.UpdateCategorySQL, name, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Newf(apperr.KindNotFound, "category %d not found", id)
	}
	return nil
}

// DeleteCategory refuses to delete a category that still has items.
func (s *PostgresStore) DeleteCategory(ctx context.Context, id int) error {
	var count int
	if err := s.db.QueryRow(ctx, database.CategoryItemCountSQL, id).Scan(&count); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to count category items", err)
	}
	if count > 0 {
		return apperr.New(apperr.KindInvalidArgument, "Cannot delete category with existing items")
	}

	tag, err := s.db.Pool.Exec(ctx, database.DeleteCategorySQL, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Newf(apperr.KindNotFound, "category %d not found", id)
	}
	return nil
}

func (s *PostgresStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list items", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Price, &item.Available); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan item", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetItem(ctx context.Context, id int) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.QueryRow(ctx, database.GetMenuItemSQL, id).
		Scan(&item.ID, &item.CategoryID, &item.Name, &item.Price, &item.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Newf(apperr.KindNotFound, "item %d not found", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load item", err)
	}
	return &item, nil
}

func (s *PostgresStore) CreateItem(ctx context.Context, item *models.MenuItem) (int, error) {
	var id int
	err := s.db.QueryRow(ctx, database.InsertMenuItemSQL, item.CategoryID, item.Name, item.Price, item.Available).Scan(&id)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "failed to insert item", err)
	}
	return id, nil
}

func (s *PostgresStore) UpdateItem(ctx context.Context, item *models.MenuItem) error {
	tag, err := s.db.Pool.Exec(ctx, database.UpdateMenuItemSQL,
		item.CategoryID, item.Name, item.Price, item.Available, item.ID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Newf(apperr.KindNotFound, "item %d not found", item.ID)
	}
	return nil
}

func (s *PostgresStore) DeleteItem(ctx context.Context, id int) error {
	tag, err := s.db.Pool.Exec(ctx, database.DeleteMenuItemSQL, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Newf(apperr.KindNotFound, "item %d not found", id)
	}
	return nil
}
