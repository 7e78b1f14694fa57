// Package catalog provides an in-memory product catalog backing the
// workflow's product existence and price lookups. Reference data is loaded
// at startup; lookups are safe for concurrent use.
package catalog

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/orderflow/order-taking-service/internal/domain"
)

// InMemoryCatalog maps product codes to unit prices.
type InMemoryCatalog struct {
	mu     sync.RWMutex
	prices map[string]domain.Price
}

// NewInMemoryCatalog creates an empty catalog.
func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{
		prices: make(map[string]domain.Price),
	}
}

// Load replaces the catalog contents with the given code-to-price mapping.
// Prices are decimal strings, e.g. "4.95".
func (c *InMemoryCatalog) Load(prices map[string]string) error {
	loaded := make(map[string]domain.Price, len(prices))
	for code, raw := range prices {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("catalog price for %s: %w", code, err)
		}
		price, err := domain.NewPrice("price", d)
		if err != nil {
			return fmt.Errorf("catalog price for %s: %w", code, err)
		}
		loaded[code] = price
	}

	c.mu.Lock()
	c.prices = loaded
	c.mu.Unlock()
	return nil
}

// SetPrice adds or replaces a single product's unit price.
func (c *InMemoryCatalog) SetPrice(code string, price domain.Price) {
	c.mu.Lock()
	c.prices[code] = price
	c.mu.Unlock()
}

// ProductExists reports catalog membership.
func (c *InMemoryCatalog) ProductExists(code domain.ProductCode) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.prices[code.Value()]
	return ok
}

// ProductPrice returns the unit price for a code. Lookup is total: an
// unknown code yields the zero price, but the workflow only asks about codes
// whose existence it has already confirmed.
func (c *InMemoryCatalog) ProductPrice(code domain.ProductCode) domain.Price {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prices[code.Value()]
}
