package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry. The id is the catalog's own id,
// not a state identity; row and cart-item states carry their own uuids.
type Product struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	ImageURL string
}

// CartItem is one order line. Quantity is always at least 1; a line whose
// quantity would reach 0 is removed from the cart instead.
type CartItem struct {
	ID       uuid.UUID
	Product  Product
	Quantity int
}

// Subtotal is price times quantity at full precision.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
