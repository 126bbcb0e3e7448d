package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shopping-cart/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CalculateTotal returns the sum of price * quantity over all items.
func (c *ShoppingCart) CalculateTotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

// ApplyDiscount reports the discount for the current total. Prices and items
// are left untouched; negative or >100 percentages are accepted as is.
func (c *ShoppingCart) ApplyDiscount(percentage decimal.Decimal) domain.Discount {
	total := c.CalculateTotal()
	amount := total.Mul(percentage).Div(hundred)
	return domain.Discount{
		Percentage: percentage,
		Total:      total,
		Amount:     amount,
		Final:      total.Sub(amount),
	}
}

// Checkout summarizes the cart, empties it and re-arms the deadline.
func (c *ShoppingCart) Checkout() domain.Receipt {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	receipt := domain.Receipt{
		ID:           uuid.NewString(),
		Lines:        c.lines(),
		Total:        c.total(),
		CheckedOutAt: now,
	}
	c.items = nil
	c.expiresAt = now.Add(ExpirationWindow)
	receipt.ExpiresAt = c.expiresAt

	c.logger.Printf("cart: checkout id=%s lines=%d total=%s", receipt.ID, len(receipt.Lines), receipt.Total)
	return receipt
}

func (c *ShoppingCart) total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.items {
		total = total.Add(p.LineTotal())
	}
	return total
}
