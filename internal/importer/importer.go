package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"shopping-cart/internal/domain"
)

type ProductWriter interface {
	AddProduct(product domain.Product)
}

var requiredHeaders = []string{"id", "name", "price", "quantity"}

// CSVImporter reads id,name,price,quantity rows and adds them to a cart in
// file order.
type CSVImporter struct {
	reader *csv.Reader
	cart   ProductWriter
}

func NewCSVImporter(r io.Reader, cart ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader: csvr,
		cart:   cart,
	}
}

// Run adds every data row to the cart and returns how many were added. Rows
// before a malformed one stay in the cart.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return 0, fmt.Errorf("missing column %q", h)
		}
	}

	imported := 0
	for {
		if err := ctx.Err(); err != nil {
			return imported, err
		}
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}

		p, err := parseRow(record, index)
		if err != nil {
			line, _ := i.reader.FieldPos(0)
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		i.cart.AddProduct(p)
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	idStr := pick(record, index, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid id %q", idStr)
	}
	priceStr := pick(record, index, "price")
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price %q", priceStr)
	}
	qtyStr := pick(record, index, "quantity")
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid quantity %q", qtyStr)
	}
	return domain.Product{
		ID:       id,
		Name:     pick(record, index, "name"),
		Price:    price,
		Quantity: qty,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
