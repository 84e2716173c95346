package api

import (
	"errors"
	"net/http"
	"time"

	"shop-service/internal/auth"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	authService    *service.AuthService
	catalogService *service.CatalogService
	cartService    *service.CartService
	orderService   *service.OrderService
	tokens         auth.TokenService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	authService *service.AuthService,
	catalogService *service.CatalogService,
	cartService *service.CartService,
	orderService *service.OrderService,
	tokens auth.TokenService,
) *Handler {
	return &Handler{
		authService:    authService,
		catalogService: catalogService,
		cartService:    cartService,
		orderService:   orderService,
		tokens:         tokens,
	}
}

// SetupRoutes sets up HTTP routes. Role requirements are attached
// per-operation: catalog reads are public, catalog mutations are admin-only,
// cart and order operations are customer-only.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/", h.welcome)
	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/login", h.login)

	router.GET("/products", h.listProducts)

	admin := router.Group("/", RequireAuth(h.tokens), RequireRole(models.RoleAdmin))
	{
		admin.POST("/products", h.createProduct)
		admin.PUT("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)
	}

	customer := router.Group("/", RequireAuth(h.tokens), RequireRole(models.RoleCustomer))
	{
		customer.GET("/cart", h.getCart)
		customer.POST("/cart", h.addToCart)
		customer.PUT("/cart", h.updateCartItem)
		customer.DELETE("/cart/:productId", h.removeFromCart)

		customer.POST("/orders", h.placeOrder)
		customer.GET("/orders", h.listOrders)
	}
}

func (h *Handler) welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the shop API")
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login exchanges credentials for a bearer token. The failure response is
// identical for unknown usernames and wrong secrets.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
