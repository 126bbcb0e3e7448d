package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	Lines     []Line          `json:"lineItems"`
	Total     decimal.Decimal `json:"total"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type Line struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// Discount is informational; applying it never changes the cart.
type Discount struct {
	Percentage decimal.Decimal `json:"percentage"`
	Total      decimal.Decimal `json:"total"`
	Amount     decimal.Decimal `json:"discount"`
	Final      decimal.Decimal `json:"totalAfterDiscount"`
}

type Receipt struct {
	ID           string          `json:"id"`
	Lines        []Line          `json:"lineItems"`
	Total        decimal.Decimal `json:"total"`
	CheckedOutAt time.Time       `json:"checkedOutAt"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

// LineFromProduct builds the view row for a cart item.
func LineFromProduct(p Product) Line {
	return Line{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		UnitPrice: p.Price,
		Total:     p.LineTotal(),
	}
}
