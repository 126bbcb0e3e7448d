package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shopping-cart/internal/service/cart"
)

func run(t *testing.T, c *cart.ShoppingCart, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := New(c, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestShell_AddViewTotal(t *testing.T) {
	c := cart.New()
	out := run(t, c, "1\n1\nA\n10.00\n2\n1\n2\nB\n5\n3\n4\n5\n9\n")

	assert.Contains(t, out, "Added Product: A\n")
	assert.Contains(t, out, "Added Product: B\n")
	assert.Contains(t, out, "Your Cart:\nName: A | Quantity: 2 | Price: $20.00\nName: B | Quantity: 3 | Price: $15.00\n")
	assert.Contains(t, out, "Total: $35.00\n")
	assert.Contains(t, out, "Thanks for using our service.")
	assert.Equal(t, 2, c.Len())
}

func TestShell_RemoveAndUpdate(t *testing.T) {
	c := cart.New()
	out := run(t, c, "1\n7\nA\n1\n1\n3\n7\n5\n3\n8\n1\n2\n8\n2\n7\n9\n")

	assert.Contains(t, out, "Updated Quantity for Product ID: 7\n")
	assert.Contains(t, out, "Removed Product ID: 7\n")
	assert.Equal(t, 2, strings.Count(out, "Product not found.\n"))
	assert.Equal(t, 0, c.Len())
}

func TestShell_DiscountAndCheckout(t *testing.T) {
	c := cart.New()
	out := run(t, c, "1\n1\nA\n10\n2\n6\n10\n7\n5\n9\n")

	assert.Contains(t, out, "Discount: $2.00\n")
	assert.Contains(t, out, "Total after discount: $18.00\n")
	assert.Contains(t, out, "Checkout Summary:\nName: A | Quantity: 2 | Price: $20.00\nTotal: $20.00\nThank you for shopping!\n")
	assert.Contains(t, out, "Total: $0.00\n")
	assert.Equal(t, 0, c.Len())
}

func TestShell_Recommendations(t *testing.T) {
	c := cart.New()
	out := run(t, c, "1\n1\nA\n20\n1\n8\n9\n")

	assert.Contains(t, out, "Recommended Products:\nName: Recommended Product 1 | Price: $10.00\nName: Recommended Product 2 | Price: $30.00\n")
}

func TestShell_InvalidInput(t *testing.T) {
	c := cart.New()
	out := run(t, c, "abc\n42\n1\nnope\n6\nten\n9\n")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please try again.\n"))
	assert.Equal(t, 2, strings.Count(out, "Invalid number.\n"))
	assert.Equal(t, 0, c.Len())
}

func TestShell_EOFEndsSession(t *testing.T) {
	c := cart.New()
	out := run(t, c, "1\n1\nA\n")

	assert.NotContains(t, out, "Added Product")
	assert.Equal(t, 0, c.Len())
}

func TestShell_ReadError(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer
	err := New(cart.New(), iotest.ErrReader(boom), &out).Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(cart.New(), strings.NewReader("1\n"), &out).Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
