package cart

import "time"

// CheckExpiration clears the cart when now is strictly after the deadline and
// reports whether it did. The deadline is only re-armed by New and Checkout,
// so once it has passed every later check clears the cart again.
func (c *ShoppingCart) CheckExpiration(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !now.After(c.expiresAt) {
		return false
	}
	dropped := len(c.items)
	c.items = nil
	c.logger.Printf("cart: expired deadline=%s dropped=%d", c.expiresAt.Format(time.RFC3339), dropped)
	return true
}
