// Package dashboard derives the aggregate figures shown on the landing
// screen. Counters are pure projections over the entity stores; they are
// exactly as fresh as the stores themselves.
package dashboard

import (
	"marketadmin/internal/domain"
	"marketadmin/internal/store"
)

type Counts struct {
	Products   int
	Categories int
	Orders     int
}

type Counters struct {
	products   *store.Store[domain.Product]
	categories *store.Store[domain.Category]
	orders     *store.Store[domain.Order]
}

func New(products *store.Store[domain.Product], categories *store.Store[domain.Category], orders *store.Store[domain.Order]) *Counters {
	return &Counters{
		products:   products,
		categories: categories,
		orders:     orders,
	}
}

func (c *Counters) Products() int { return c.products.Len() }

func (c *Counters) Categories() int { return c.categories.Len() }

func (c *Counters) Orders() int { return c.orders.Len() }

// Snapshot reads all three counters at once. Each figure is consistent with
// its store at the instant of the read.
func (c *Counters) Snapshot() Counts {
	return Counts{
		Products:   c.Products(),
		Categories: c.Categories(),
		Orders:     c.Orders(),
	}
}
