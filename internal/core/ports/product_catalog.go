package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// ProductCatalog answers questions about the products an order may refer to.
// The place-order workflow uses it twice: during validation to reject lines
// naming unknown products, and during pricing to look up unit prices.
type ProductCatalog interface {
	// CheckProductCodeExists reports whether the product code refers to a
	// product the catalog knows about.
	CheckProductCodeExists(ctx context.Context, code order.ProductCode) (bool, error)

	// GetProductPrice returns the unit price for a product code. The code
	// must have passed CheckProductCodeExists first.
	GetProductPrice(ctx context.Context, code order.ProductCode) (order.Price, error)
}
