package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"shop-service/internal/auth"
	"shop-service/internal/models"
	"shop-service/internal/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireAuth resolves the bearer token to an identity. A missing
// Authorization header is 401; a token that fails verification (malformed,
// bad signature, expired) is 403.
func RequireAuth(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
			return
		}

		tokenString := header
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			tokenString = parts[1]
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// RequireRole gates an operation on the resolved identity's role. Must run
// after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	msg := "Customer access only"
	if role == models.RoleAdmin {
		msg = "Admin access only"
	}

	return func(c *gin.Context) {
		identity := identityFrom(c)
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
			return
		}
		c.Next()
	}
}

// identityFrom returns the identity resolved by RequireAuth.
func identityFrom(c *gin.Context) models.Identity {
	identity, _ := c.MustGet(identityKey).(models.Identity)
	return identity
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
