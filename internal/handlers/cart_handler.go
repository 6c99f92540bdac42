package handlers

import (
	"errors"
	"net/http"

	"yoldas/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	crt, err := h.cartService.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	crt, err := h.cartService.AddItem(sessionID, req)
	if err != nil {
		var selErr *services.SelectionError
		switch {
		case errors.As(err, &selErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": selErr.Error(), "groupId": selErr.GroupID})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		case errors.Is(err, services.ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Meal is out of stock"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		}
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req services.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	crt, err := h.cartService.RemoveItem(sessionID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.cartService.Clear(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.Status(http.StatusNoContent)
}
