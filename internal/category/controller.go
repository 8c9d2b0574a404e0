// Package category is the view-controller behind the category management
// screen.
package category

import (
	"context"

	"go.uber.org/zap"

	"marketadmin/internal/domain"
	apperrors "marketadmin/internal/errors"
	"marketadmin/internal/notify"
	"marketadmin/internal/store"
	"marketadmin/internal/view"
)

type API interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, draft domain.CategoryDraft) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

func NewStore() *store.Store[domain.Category] {
	return store.New(func(c domain.Category) string { return c.ID })
}

type Controller struct {
	api      API
	store    *store.Store[domain.Category]
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewController(api API, st *store.Store[domain.Category], notifier notify.Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		api:      api,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

func (c *Controller) Load(ctx context.Context) error {
	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		c.logger.Error("fetching categories", zap.Error(err))
		c.notifier.Error("Error", "Failed to fetch categories")
		return err
	}
	c.store.ReplaceAll(categories)
	return nil
}

// Create validates presence of the name, then appends the server-returned
// canonical category after a confirmed create.
func (c *Controller) Create(ctx context.Context, draft domain.CategoryDraft) (domain.Category, error) {
	if draft.Name == "" {
		return domain.Category{}, apperrors.NewValidationError("category name is required", apperrors.ValidationDetail{
			Field:   "category",
			Message: "category name is required",
		})
	}

	created, err := c.api.CreateCategory(ctx, draft)
	if err != nil {
		c.logger.Error("adding category", zap.Error(err))
		c.notifier.Error("Error", "Failed to add category")
		return domain.Category{}, err
	}

	c.store.Append(created)
	c.notifier.Success("Success", "Category added successfully")
	return created, nil
}

func (c *Controller) Update(ctx context.Context, id string, draft domain.CategoryDraft) (domain.Category, error) {
	if draft.Name == "" {
		return domain.Category{}, apperrors.NewValidationError("category name is required", apperrors.ValidationDetail{
			Field:   "category",
			Message: "category name is required",
		})
	}

	updated, err := c.api.UpdateCategory(ctx, id, draft)
	if err != nil {
		c.logger.Error("updating category", zap.String("categoryId", id), zap.Error(err))
		c.notifier.Error("Error", "Failed to update category")
		return domain.Category{}, err
	}

	c.store.ReplaceOne(id, updated)
	c.notifier.Success("Success", "Category updated successfully")
	return updated, nil
}

// Delete removes the category locally only after the server confirms.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteCategory(ctx, id); err != nil {
		c.logger.Error("deleting category", zap.String("categoryId", id), zap.Error(err))
		c.notifier.Error("Error", "Failed to delete category")
		return err
	}

	c.store.Remove(id)
	c.notifier.Success("Success", "Category deleted successfully")
	return nil
}

func (c *Controller) Categories() []domain.Category {
	return c.store.Items()
}

// SortBy supports the single sortable column.
func (c *Controller) SortBy(key string, dir view.Direction) []domain.Category {
	items := c.store.Items()
	if key != "name" {
		return items
	}
	return view.Sort(items, view.ByString(func(cat domain.Category) string { return cat.Name }), dir)
}

func (c *Controller) FilterBySubstring(term string) []domain.Category {
	return view.Filter(c.store.Items(), term, func(cat domain.Category) []string {
		return []string{cat.Name}
	})
}
