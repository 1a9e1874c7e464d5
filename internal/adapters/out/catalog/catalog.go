// Package catalog provides an in-memory product catalog adapter.
package catalog

import (
	"context"
	"sync"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"
)

// InMemoryCatalog is a ProductCatalog backed by a price map. Safe for
// concurrent use.
type InMemoryCatalog struct {
	mu     sync.RWMutex
	prices map[string]order.Price
}

// NewInMemoryCatalog creates a catalog holding the given prices, keyed by
// product code text.
func NewInMemoryCatalog(prices map[string]order.Price) *InMemoryCatalog {
	copied := make(map[string]order.Price, len(prices))
	for code, price := range prices {
		copied[code] = price
	}
	return &InMemoryCatalog{prices: copied}
}

// AddProduct registers or replaces the price for a product code.
func (c *InMemoryCatalog) AddProduct(code order.ProductCode, price order.Price) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[code.Value()] = price
	return nil
}

// CheckProductCodeExists reports whether the catalog holds a price for the
// product code.
func (c *InMemoryCatalog) CheckProductCodeExists(_ context.Context, code order.ProductCode) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.prices[code.Value()]
	return ok, nil
}

// GetProductPrice returns the price for a product code the catalog knows
// about.
func (c *InMemoryCatalog) GetProductPrice(_ context.Context, code order.ProductCode) (order.Price, error) {
	if err := code.Validate(); err != nil {
		return order.Price{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	price, ok := c.prices[code.Value()]
	if !ok {
		return order.Price{}, errs.NewObjectNotFoundError("productCode", code.Value())
	}
	return price, nil
}
