// Package product is the view-controller behind the product management
// screen, including the category options for its create form.
package product

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
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, draft domain.ProductDraft) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

func NewStore() *store.Store[domain.Product] {
	return store.New(func(p domain.Product) string { return p.ID })
}

type Controller struct {
	api      API
	store    *store.Store[domain.Product]
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewController(api API, st *store.Store[domain.Product], notifier notify.Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		api:      api,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

func (c *Controller) Load(ctx context.Context) error {
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		c.logger.Error("fetching products", zap.Error(err))
		c.notifier.Error("Error", "Failed to fetch products")
		return err
	}
	c.store.ReplaceAll(products)
	return nil
}

// CategoryOptions fetches the categories available to the product form.
func (c *Controller) CategoryOptions(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		c.logger.Error("fetching categories for product form", zap.Error(err))
		c.notifier.Error("Error", "Failed to fetch categories")
		return nil, err
	}
	return categories, nil
}

// Create presence-validates the draft, then appends the server-returned
// product after a confirmed create. A 404 means the referenced category does
// not exist server-side and is reported as such.
func (c *Controller) Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Product{}, err
	}

	created, err := c.api.CreateProduct(ctx, draft)
	if err != nil {
		c.logger.Error("adding product", zap.Error(err))
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.notifier.Error("Error", "Category not found")
		} else {
			c.notifier.Error("Error", "Failed to add product")
		}
		return domain.Product{}, err
	}

	c.store.Append(created)
	c.notifier.Success("Success", "Product added successfully")
	return created, nil
}

func (c *Controller) Update(ctx context.Context, id string, draft domain.ProductDraft) (domain.Product, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Product{}, err
	}

	updated, err := c.api.UpdateProduct(ctx, id, draft)
	if err != nil {
		c.logger.Error("updating product", zap.String("productId", id), zap.Error(err))
		c.notifier.Error("Error", "Failed to update product")
		return domain.Product{}, err
	}

	c.store.ReplaceOne(id, updated)
	c.notifier.Success("Success", "Product updated successfully")
	return updated, nil
}

func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		c.logger.Error("deleting product", zap.String("productId", id), zap.Error(err))
		switch {
		case isNotFound(err):
			c.notifier.Error("Error", "Product not found")
		case isUnauthorized(err):
			c.notifier.Error("Error", "Unauthorized. Please log in again.")
		default:
			c.notifier.Error("Error", "Failed to delete product")
		}
		return err
	}

	c.store.Remove(id)
	c.notifier.Success("Success", "Product deleted successfully")
	return nil
}

func (c *Controller) Products() []domain.Product {
	return c.store.Items()
}

var sortKeys = map[string]view.Compare[domain.Product]{
	"name":     view.ByString(func(p domain.Product) string { return p.Name }),
	"brand":    view.ByString(func(p domain.Product) string { return p.Brand }),
	"category": view.ByString(func(p domain.Product) string { return p.CategoryName }),
	"price":    view.ByNumber(func(p domain.Product) float64 { return p.Price }),
	"stock":    view.ByNumber(func(p domain.Product) float64 { return float64(p.Stock) }),
}

func (c *Controller) SortBy(key string, dir view.Direction) []domain.Product {
	items := c.store.Items()
	cmp, ok := sortKeys[key]
	if !ok {
		return items
	}
	return view.Sort(items, cmp, dir)
}

func (c *Controller) FilterBySubstring(term string) []domain.Product {
	return view.Filter(c.store.Items(), term, func(p domain.Product) []string {
		return []string{p.Name, p.Brand, p.CategoryName}
	})
}

func validateDraft(draft domain.ProductDraft) error {
	var details []apperrors.ValidationDetail
	if draft.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "product name is required"})
	}
	if draft.CategoryName == "" {
		details = append(details, apperrors.ValidationDetail{Field: "categoryName", Message: "category is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("product draft is incomplete", details...)
	}
	return nil
}

func isNotFound(err error) bool {
	_, ok := apperrors.IsNotFoundError(err)
	return ok
}

func isUnauthorized(err error) bool {
	_, ok := apperrors.IsUnauthorizedError(err)
	return ok
}
