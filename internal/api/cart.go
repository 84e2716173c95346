package api

import (
	"errors"
	"net/http"
	"strconv"

	"shop-service/internal/store"

	"github.com/gin-gonic/gin"
)

// getCart returns the caller's cart lines.
func (h *Handler) getCart(c *gin.Context) {
	identity := identityFrom(c)
	c.JSON(http.StatusOK, h.cartService.Get(identity.UserID))
}

type cartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// addToCart adds a product to the caller's cart, accumulating quantity for
// repeated additions.
func (h *Handler) addToCart(c *gin.Context) {
	identity := identityFrom(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	cart, err := h.cartService.AddItem(identity.UserID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive integer"})
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart",
		"cart":    cart,
	})
}

// updateCartItem overwrites the quantity of an existing cart line.
func (h *Handler) updateCartItem(c *gin.Context) {
	identity := identityFrom(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	cart, err := h.cartService.SetItemQuantity(identity.UserID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive integer"})
		case errors.Is(err, store.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
		case errors.Is(err, store.ErrProductNotInCart):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"cart":    cart,
	})
}

// removeFromCart removes a product's line; removing an absent line is a
// no-op as long as the cart exists.
func (h *Handler) removeFromCart(c *gin.Context) {
	identity := identityFrom(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	cart, err := h.cartService.RemoveItem(identity.UserID, productID)
	if err != nil {
		if errors.Is(err, store.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"cart":    cart,
	})
}
