package domain

import "github.com/shopspring/decimal"

// Product is one line item as held by the cart. Only Quantity changes after
// the product has been added.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal returns Price * Quantity.
func (p Product) LineTotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
