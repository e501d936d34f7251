// Package menu owns catalog writes: categories and items. Changing an item
// price only affects future orders; existing orders keep their snapshot.
package menu

import (
	"context"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/catalog"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

// Store is the persistence surface the menu service needs.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, name string) error
	DeleteCategory(ctx context.Context, id int) error

	ListItems(ctx context.Context) ([]models.MenuItem, error)
	GetItem(ctx context.Context, id int) (*models.MenuItem, error)
	CreateItem(ctx context.Context, item *models.MenuItem) (int, error)
	UpdateItem(ctx context.Context, item *models.MenuItem) error
	DeleteItem(ctx context.Context, id int) error
}

// Service handles menu management and keeps the price cache honest.
type Service struct {
	store   Store
	catalog catalog.Gateway
	logger  *logger.Logger
}

// NewService creates a menu service.
func NewService(store Store, gateway catalog.Gateway, log *logger.Logger) *Service {
	return &Service{store: store, catalog: gateway, logger: log}
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	return s.store.CreateCategory(ctx, name)
}

func (s *Service) UpdateCategory(ctx context.Context, id int, name string) error {
	if name == "" {
		return apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	return s.store.UpdateCategory(ctx, id, name)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.store.DeleteCategory(ctx, id)
}

func (s *Service) Items(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.ListItems(ctx)
}

func (s *Service) Item(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.store.GetItem(ctx, id)
}

// CreateItem adds a catalog item.
func (s *Service) CreateItem(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Available:  true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	id, err := s.store.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

// UpdateItem rewrites a catalog item and drops its cached price.
func (s *Service) UpdateItem(ctx context.Context, id int, req *models.MenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		ID:         id,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Available:  true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return item, nil
}

// DeleteItem removes a catalog item and drops its cached price.
func (s *Service) DeleteItem(ctx context.Context, id int) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, itemID int) {
	if err := s.catalog.InvalidatePrice(ctx, itemID); err != nil {
		s.logger.Error("price_invalidate_failed", "Failed to invalidate cached price", "", err,
			map[string]interface{}{"item_id": itemID})
	}
}
