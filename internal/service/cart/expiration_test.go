package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExpiration_BeforeOrAtDeadline(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.AddProduct(product(1, "A", "1.00", 1))

	assert.False(t, c.CheckExpiration(clock.Now()))
	assert.False(t, c.CheckExpiration(c.ExpiresAt()))
	assert.Equal(t, 1, c.Len())
}

func TestCheckExpiration_AfterDeadlineClears(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.AddProduct(product(1, "A", "1.00", 1))
	deadline := c.ExpiresAt()

	require.True(t, c.CheckExpiration(deadline.Add(time.Nanosecond)))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, deadline, c.ExpiresAt())
}

// The deadline is not re-armed on expiry, so every later check keeps
// treating the cart as expired until the next checkout.
func TestCheckExpiration_DeadlineStaysInPast(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	deadline := c.ExpiresAt()

	require.True(t, c.CheckExpiration(deadline.Add(time.Minute)))

	c.AddProduct(product(2, "B", "1.00", 1))
	require.True(t, c.CheckExpiration(deadline.Add(2*time.Minute)))
	assert.Equal(t, 0, c.Len())

	require.True(t, c.CheckExpiration(deadline.Add(3*time.Minute)))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, deadline, c.ExpiresAt())
}

func TestCheckExpiration_CheckoutRearms(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))

	clock.Advance(ExpirationWindow + time.Minute)
	require.True(t, c.CheckExpiration(clock.Now()))

	c.Checkout()
	c.AddProduct(product(1, "A", "1.00", 1))
	assert.False(t, c.CheckExpiration(clock.Now()))
	assert.Equal(t, 1, c.Len())

	clock.Advance(ExpirationWindow + time.Second)
	assert.True(t, c.CheckExpiration(clock.Now()))
	assert.Equal(t, 0, c.Len())
}
