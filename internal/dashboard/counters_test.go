package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketadmin/internal/domain"
	"marketadmin/internal/store"
)

func newCounters() (*Counters, *store.Store[domain.Product], *store.Store[domain.Category], *store.Store[domain.Order]) {
	products := store.New(func(p domain.Product) string { return p.ID })
	categories := store.New(func(c domain.Category) string { return c.ID })
	orders := store.New(func(o domain.Order) string { return o.OrderID })
	return New(products, categories, orders), products, categories, orders
}

func TestCounters_TrackStoreContents(t *testing.T) {
	c, products, categories, orders := newCounters()

	assert.Equal(t, Counts{}, c.Snapshot())

	products.ReplaceAll([]domain.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})
	categories.ReplaceAll([]domain.Category{{ID: "c1"}})
	orders.ReplaceAll([]domain.Order{{OrderID: "o1"}, {OrderID: "o2"}})

	assert.Equal(t, Counts{Products: 3, Categories: 1, Orders: 2}, c.Snapshot())
}

func TestCounters_ReplaceAllMatchesLength(t *testing.T) {
	c, products, _, _ := newCounters()

	for n := 0; n <= 5; n++ {
		items := make([]domain.Product, n)
		for i := range items {
			items[i] = domain.Product{ID: string(rune('a' + i))}
		}
		products.ReplaceAll(items)
		assert.Equal(t, n, c.Products())
	}
}

func TestCounters_FollowLocalPatches(t *testing.T) {
	c, _, categories, _ := newCounters()

	categories.Append(domain.Category{ID: "c1"})
	categories.Append(domain.Category{ID: "c2"})
	assert.Equal(t, 2, c.Categories())

	categories.Remove("c1")
	assert.Equal(t, 1, c.Categories())

	categories.Remove("c1")
	assert.Equal(t, 1, c.Categories())
}
