package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"yoldas/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder is the checkout contract the customer app depends on:
// {restaurantId, items, totalAmount, customerName, customerAddress} in,
// {orderId} out.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order data"})
		return
	}

	orderID, err := h.orderService.PlaceOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order data"})
		case errors.Is(err, services.ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Total does not match items"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
}

// ListOrders serves the owner dashboard via ?restaurantId= query.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurantId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId missing"})
		return
	}

	orders, err := h.orderService.ListByRestaurant(uint(restaurantID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListOrdersForRestaurant is the same listing via the REST path.
func (h *OrderHandler) ListOrdersForRestaurant(c *gin.Context) {
	restaurantID, ok := uintParam(c, "restaurantId")
	if !ok {
		return
	}

	orders, err := h.orderService.ListByRestaurant(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}

	items, err := h.orderService.GetItems(orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ChangeStatus updates the advisory delivery status via ?status= query.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status query parameter"})
		return
	}

	if err := h.orderService.UpdateStatus(orderID, status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
