package api

import (
	"errors"
	"net/http"

	"shop-service/internal/store"

	"github.com/gin-gonic/gin"
)

// placeOrder converts the caller's cart into an order.
func (h *Handler) placeOrder(c *gin.Context) {
	identity := identityFrom(c)

	order, err := h.orderService.PlaceOrder(c.Request.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// listOrders returns the caller's own orders.
func (h *Handler) listOrders(c *gin.Context) {
	identity := identityFrom(c)
	c.JSON(http.StatusOK, h.orderService.ListOrders(identity.UserID))
}
