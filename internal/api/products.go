package api

import (
	"errors"
	"net/http"
	"strconv"

	"shop-service/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// listProducts returns one page of the catalog, filtered by the search term.
func (h *Handler) listProducts(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	limit := intQuery(c, "limit", defaultLimit)
	search := c.Query("search")

	c.JSON(http.StatusOK, h.catalogService.List(search, page, limit))
}

type createProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price *int64 `json:"price" binding:"required"`
}

// createProduct handles admin product creation
func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be non-negative"})
		return
	}

	product := h.catalogService.Create(c.Request.Context(), req.Name, *req.Price)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added",
		"product": product,
	})
}

type updateProductRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// updateProduct handles admin partial updates; omitted fields keep their
// current values.
func (h *Handler) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if req.Price != nil && *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be non-negative"})
		return
	}

	product, err := h.catalogService.Update(c.Request.Context(), id, req.Name, req.Price)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated",
		"product": product,
	})
}

// deleteProduct handles admin product deletion
func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// intQuery parses a positive integer query param, falling back to def on
// absent or malformed values.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return def
	}
	return val
}
