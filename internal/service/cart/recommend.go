package cart

import (
	"github.com/shopspring/decimal"
	"shopping-cart/internal/domain"
)

var recommendationSpread = decimal.NewFromInt(10)

// RecommendProducts derives two placeholder products per cart item, one
// cheaper and one pricier by a fixed spread. Prices may go negative.
func (c *ShoppingCart) RecommendProducts() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Product, 0, 2*len(c.items))
	for _, p := range c.items {
		out = append(out, recommendationsFor(p.Price)...)
	}
	return out
}

func recommendationsFor(price decimal.Decimal) []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Recommended Product 1", Price: price.Sub(recommendationSpread), Quantity: 1},
		{ID: 2, Name: "Recommended Product 2", Price: price.Add(recommendationSpread), Quantity: 1},
	}
}
