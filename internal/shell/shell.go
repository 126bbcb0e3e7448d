package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"shopping-cart/internal/domain"
)

// Cart is the set of cart operations the menu drives.
type Cart interface {
	AddProduct(p domain.Product)
	RemoveProduct(id int) bool
	UpdateQuantity(id, quantity int) bool
	View() []domain.Line
	CalculateTotal() decimal.Decimal
	ApplyDiscount(percentage decimal.Decimal) domain.Discount
	Checkout() domain.Receipt
	RecommendProducts() []domain.Product
}

var errQuit = errors.New("quit")

const menu = `
===============================================
||            Shopping Cart System           ||
===============================================
||    1. Add Product to Cart                 ||
||    2. Remove Product from Cart            ||
||    3. Update Product Quantity             ||
||    4. View Cart                           ||
||    5. Calculate Total                     ||
||    6. Apply Discount                      ||
||    7. Checkout                            ||
||    8. Get Product Recommendations         ||
||    9. Exit                                ||
===============================================
`

// Shell is a line-oriented menu over a cart.
type Shell struct {
	cart Cart
	in   *bufio.Scanner
	out  io.Writer
}

func New(cart Cart, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		cart: cart,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run shows the menu until the user exits, input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		fmt.Fprint(s.out, menu)
		choice, err := s.ask("Enter your choice: ")
		if err == nil {
			err = s.dispatch(strings.TrimSpace(choice))
		}
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.add()
	case "2":
		return s.remove()
	case "3":
		return s.updateQuantity()
	case "4":
		s.printCart()
	case "5":
		s.printf("Total: $%s\n", money(s.cart.CalculateTotal()))
	case "6":
		return s.discount()
	case "7":
		s.checkout()
	case "8":
		s.recommend()
	case "9":
		s.printf("Thanks for using our service.\n")
		return errQuit
	default:
		s.printf("Invalid choice. Please try again.\n")
	}
	return nil
}

func (s *Shell) add() error {
	id, ok, err := s.askInt("Enter product ID: ")
	if err != nil || !ok {
		return err
	}
	name, err := s.ask("Enter product name: ")
	if err != nil {
		return err
	}
	price, ok, err := s.askDecimal("Enter product price: ")
	if err != nil || !ok {
		return err
	}
	qty, ok, err := s.askInt("Enter product quantity: ")
	if err != nil || !ok {
		return err
	}

	name = strings.TrimSpace(name)
	s.cart.AddProduct(domain.Product{ID: id, Name: name, Price: price, Quantity: qty})
	s.printf("Added Product: %s\n", name)
	return nil
}

func (s *Shell) remove() error {
	id, ok, err := s.askInt("Enter product ID to remove: ")
	if err != nil || !ok {
		return err
	}
	if s.cart.RemoveProduct(id) {
		s.printf("Removed Product ID: %d\n", id)
	} else {
		s.printf("Product not found.\n")
	}
	return nil
}

func (s *Shell) updateQuantity() error {
	id, ok, err := s.askInt("Enter product ID to update: ")
	if err != nil || !ok {
		return err
	}
	qty, ok, err := s.askInt("Enter new quantity: ")
	if err != nil || !ok {
		return err
	}
	if s.cart.UpdateQuantity(id, qty) {
		s.printf("Updated Quantity for Product ID: %d\n", id)
	} else {
		s.printf("Product not found.\n")
	}
	return nil
}

func (s *Shell) discount() error {
	pct, ok, err := s.askDecimal("Enter discount percentage: ")
	if err != nil || !ok {
		return err
	}
	d := s.cart.ApplyDiscount(pct)
	s.printf("Discount: $%s\n", money(d.Amount))
	s.printf("Total after discount: $%s\n", money(d.Final))
	return nil
}

func (s *Shell) checkout() {
	receipt := s.cart.Checkout()
	s.printf("Checkout Summary:\n")
	s.printLines(receipt.Lines)
	s.printf("Total: $%s\n", money(receipt.Total))
	s.printf("Thank you for shopping!\n")
}

func (s *Shell) recommend() {
	s.printf("Recommended Products:\n")
	for _, p := range s.cart.RecommendProducts() {
		s.printf("Name: %s | Price: $%s\n", p.Name, money(p.Price))
	}
}

func (s *Shell) printCart() {
	s.printf("Your Cart:\n")
	s.printLines(s.cart.View())
}

func (s *Shell) printLines(lines []domain.Line) {
	for _, l := range lines {
		s.printf("Name: %s | Quantity: %d | Price: $%s\n", l.Name, l.Quantity, money(l.Total))
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// ask prints prompt and returns the next input line, or io.EOF when input ends.
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) askInt(prompt string) (int, bool, error) {
	raw, err := s.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.printf("Invalid number.\n")
		return 0, false, nil
	}
	return n, true, nil
}

func (s *Shell) askDecimal(prompt string) (decimal.Decimal, bool, error) {
	raw, err := s.ask(prompt)
	if err != nil {
		return decimal.Zero, false, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		s.printf("Invalid number.\n")
		return decimal.Zero, false, nil
	}
	return d, true, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
