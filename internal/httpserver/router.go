package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Cart))

	h := &cartHandler{cart: deps.Cart, logger: logger}
	carts := router.Group("/cart")
	carts.GET("", h.view)
	carts.POST("/items", h.addProduct)
	carts.DELETE("/items/:id", h.removeProduct)
	carts.PATCH("/items/:id", h.updateQuantity)
	carts.GET("/total", h.total)
	carts.POST("/discount", h.applyDiscount)
	carts.POST("/checkout", h.checkout)
	carts.GET("/recommendations", h.recommendations)

	return router
}

// corsConfig allows every origin unless an explicit list is configured.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	return cfg
}
