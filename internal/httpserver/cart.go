package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"shopping-cart/internal/domain"
)

// CartService is the cart surface served over HTTP.
type CartService interface {
	AddProduct(p domain.Product)
	RemoveProduct(id int) bool
	UpdateQuantity(id, quantity int) bool
	Snapshot() domain.Cart
	CalculateTotal() decimal.Decimal
	ApplyDiscount(percentage decimal.Decimal) domain.Discount
	Checkout() domain.Receipt
	RecommendProducts() []domain.Product
	Len() int
}

var errInvalidID = errors.New("invalid item id")

type cartHandler struct {
	cart   CartService
	logger *log.Logger
}

// Fields are pointers so that a missing field fails binding while an
// explicit zero or negative value is accepted.
type addProductRequest struct {
	ID       *int             `json:"id" binding:"required"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Quantity *int             `json:"quantity" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type discountRequest struct {
	Percentage *decimal.Decimal `json:"percentage" binding:"required"`
}

type productList struct {
	Count   int              `json:"count"`
	Results []domain.Product `json:"results"`
}

func (h *cartHandler) view(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *cartHandler) addProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	p := domain.Product{
		ID:       *req.ID,
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
	h.cart.AddProduct(p)
	c.JSON(http.StatusCreated, p)
}

func (h *cartHandler) removeProduct(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	if !h.cart.RemoveProduct(id) {
		h.fail(c, http.StatusNotFound, fmt.Errorf("cart item %d: %w", id, domain.ErrNotFound))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cartHandler) updateQuantity(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	if !h.cart.UpdateQuantity(id, *req.Quantity) {
		h.fail(c, http.StatusNotFound, fmt.Errorf("cart item %d: %w", id, domain.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *cartHandler) total(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"total": h.cart.CalculateTotal()})
}

func (h *cartHandler) applyDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, h.cart.ApplyDiscount(*req.Percentage))
}

func (h *cartHandler) checkout(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Checkout())
}

func (h *cartHandler) recommendations(c *gin.Context) {
	recs := h.cart.RecommendProducts()
	c.JSON(http.StatusOK, productList{Count: len(recs), Results: recs})
}

func (h *cartHandler) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError || errors.Is(err, domain.ErrNotFound) {
		h.logger.Printf("http: %s %s status=%d error=%v", c.Request.Method, c.Request.URL.Path, status, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func itemID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidID, c.Param("id"))
	}
	return id, nil
}
