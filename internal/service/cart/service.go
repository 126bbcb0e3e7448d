package cart

import (
	"io"
	"log"
	"slices"
	"sync"
	"time"

	"shopping-cart/internal/domain"
)

// ExpirationWindow is added to the current time whenever the deadline is armed.
const ExpirationWindow = 5 * time.Minute

// ShoppingCart owns the ordered line items of one cart session and its
// expiration deadline. It is safe for use from the request path and the
// expiration scheduler at the same time.
type ShoppingCart struct {
	mu        sync.Mutex
	items     []domain.Product
	expiresAt time.Time
	now       func() time.Time
	logger    *log.Logger
}

type Option func(*ShoppingCart)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(c *ShoppingCart) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *ShoppingCart) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(opts ...Option) *ShoppingCart {
	c := &ShoppingCart{
		now:    time.Now,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.expiresAt = c.now().Add(ExpirationWindow)
	return c
}

// AddProduct appends p. Duplicate ids are kept as separate items.
func (c *ShoppingCart) AddProduct(p domain.Product) {
	c.mu.Lock()
	c.items = append(c.items, p)
	c.mu.Unlock()
	c.logger.Printf("cart: added product id=%d name=%s", p.ID, p.Name)
}

// RemoveProduct removes the first item with the given id and reports whether
// one was found.
func (c *ShoppingCart) RemoveProduct(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		c.logger.Printf("cart: remove id=%d not found", id)
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.logger.Printf("cart: removed product id=%d", id)
	return true
}

// UpdateQuantity overwrites the quantity of the first item with the given id.
func (c *ShoppingCart) UpdateQuantity(id, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		c.logger.Printf("cart: update id=%d not found", id)
		return false
	}
	c.items[i].Quantity = quantity
	c.logger.Printf("cart: updated quantity id=%d quantity=%d", id, quantity)
	return true
}

// View returns one line per item in insertion order.
func (c *ShoppingCart) View() []domain.Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines()
}

// Items returns a copy of the current line items.
func (c *ShoppingCart) Items() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *ShoppingCart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ExpiresAt returns the current expiration deadline.
func (c *ShoppingCart) ExpiresAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expiresAt
}

// Snapshot returns the lines, total and deadline read under one lock.
func (c *ShoppingCart) Snapshot() domain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Cart{
		Lines:     c.lines(),
		Total:     c.total(),
		ExpiresAt: c.expiresAt,
	}
}

// indexOf returns the position of the first item with id, or -1.
// Callers hold c.mu.
func (c *ShoppingCart) indexOf(id int) int {
	return slices.IndexFunc(c.items, func(p domain.Product) bool {
		return p.ID == id
	})
}

func (c *ShoppingCart) lines() []domain.Line {
	lines := make([]domain.Line, 0, len(c.items))
	for _, p := range c.items {
		lines = append(lines, domain.LineFromProduct(p))
	}
	return lines
}
