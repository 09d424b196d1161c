package domain

import "github.com/shopspring/decimal"

// A CartItem couples a copy of the product with the ordered quantity.
// The copy is intentional: catalog mutations after the add must not
// change what the customer already put in the cart.
type CartItem struct {
	Product  Product
	Quantity int
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// An Order is the checkout handoff: the cart content frozen under a
// reference, plus the formatted message and messaging deep link.
type Order struct {
	Ref     string
	Items   []CartItem
	Total   decimal.Decimal
	Message string
	Link    string
}
