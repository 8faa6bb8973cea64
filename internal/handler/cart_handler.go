package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/cart"
)

type CartHandler struct {
	carts  *cart.Service
	logger *zap.Logger
}

func NewCartHandler(carts *cart.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	contents, err := h.carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load cart", zap.String("cart_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var item cart.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	contents, err := h.carts.Add(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

type updateQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	contents, err := h.carts.UpdateQuantity(c.Request.Context(), c.Param("id"),
		req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	contents, err := h.carts.Remove(c.Request.Context(), c.Param("id"),
		c.Query("productId"), c.Query("size"), c.Query("color"))
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to clear cart", zap.String("cart_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CartHandler) cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Cart operation failed", zap.String("cart_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}
