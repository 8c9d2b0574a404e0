// Package order is the view-controller behind the order management screen:
// listing, local sort/filter, detail lookup, and status updates.
package order

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"marketadmin/internal/domain"
	apperrors "marketadmin/internal/errors"
	"marketadmin/internal/notify"
	"marketadmin/internal/store"
	"marketadmin/internal/view"
)

type API interface {
	ListOrders(ctx context.Context) (domain.OrderList, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// NewStore builds the order store keyed by the server-assigned order ID.
func NewStore() *store.Store[domain.Order] {
	return store.New(func(o domain.Order) string { return o.OrderID })
}

type Controller struct {
	api      API
	store    *store.Store[domain.Order]
	notifier notify.Notifier
	logger   *zap.Logger

	mu          sync.RWMutex
	totalOrders int
}

func NewController(api API, st *store.Store[domain.Order], notifier notify.Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		api:      api,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

// Load replaces the store with the full detailed listing. On failure the
// previous contents stay available and the operator is notified once.
func (c *Controller) Load(ctx context.Context) error {
	list, err := c.api.ListOrders(ctx)
	if err != nil {
		c.logger.Error("fetching orders", zap.Error(err))
		c.notifier.Error("Error", "Failed to fetch orders")
		return err
	}

	c.store.ReplaceAll(list.Orders)
	c.mu.Lock()
	c.totalOrders = list.TotalOrders
	c.mu.Unlock()
	return nil
}

// SetStatus assigns a status to an order. Any known status is assignable
// regardless of the current one; the selector mirrors what the server
// permits. The local copy is patched only after the server confirms, and
// only its status field changes; a background re-fetch then resynchronizes
// the aggregates.
func (c *Controller) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		c.logger.Warn("rejecting unknown order status", zap.String("orderId", orderID), zap.String("status", string(status)))
		return apperrors.NewValidationError("unknown order status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of the known lifecycle states",
		})
	}

	if err := c.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		c.logger.Error("updating order status", zap.String("orderId", orderID), zap.Error(err))
		c.notifier.Error("Error", "Failed to update order status")
		return err
	}

	if current, ok := c.store.Get(orderID); ok {
		current.Status = status
		c.store.ReplaceOne(orderID, current)
	}
	c.notifier.Success("Success", "Order status updated successfully")

	// resync the aggregate statistics; a failure here keeps the patched
	// local state and is logged without a second notification
	if list, err := c.api.ListOrders(ctx); err != nil {
		c.logger.Warn("refreshing orders after status update", zap.Error(err))
	} else {
		c.store.ReplaceAll(list.Orders)
		c.mu.Lock()
		c.totalOrders = list.TotalOrders
		c.mu.Unlock()
	}

	return nil
}

// Show fetches the full detail for one order.
func (c *Controller) Show(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := c.api.GetOrder(ctx, orderID)
	if err != nil {
		c.logger.Error("fetching order details", zap.String("orderId", orderID), zap.Error(err))
		c.notifier.Error("Error", "Failed to fetch order details")
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Controller) Orders() []domain.Order {
	return c.store.Items()
}

// TotalOrders is the server-reported total from the last successful load.
func (c *Controller) TotalOrders() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalOrders
}

var sortKeys = map[string]view.Compare[domain.Order]{
	"id":       view.ByString(func(o domain.Order) string { return o.OrderID }),
	"customer": view.ByString(func(o domain.Order) string { return o.Customer.Name }),
	"date":     view.ByTime(func(o domain.Order) time.Time { return o.CreatedAt }),
	"total":    view.ByNumber(func(o domain.Order) float64 { return o.TotalAmount }),
	"status":   view.ByString(func(o domain.Order) string { return string(o.DisplayStatus()) }),
}

// SortBy orders the current snapshot by a column key. Unknown keys return
// the snapshot in store order.
func (c *Controller) SortBy(key string, dir view.Direction) []domain.Order {
	items := c.store.Items()
	cmp, ok := sortKeys[key]
	if !ok {
		return items
	}
	return view.Sort(items, cmp, dir)
}

// FilterBySubstring matches the order ID or the customer name.
func (c *Controller) FilterBySubstring(term string) []domain.Order {
	return view.Filter(c.store.Items(), term, func(o domain.Order) []string {
		return []string{o.OrderID, o.Customer.Name}
	})
}
