package service

import (
	"context"
	"testing"
	"time"

	"shop-service/internal/auth"
	"shop-service/internal/models"
	"shop-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, auth.TokenService) {
	t.Helper()

	db := store.NewStore()
	require.NoError(t, db.SeedPrincipals(store.DefaultPrincipals()))

	tokens := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(db, tokens), tokens
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	svc, tokens := newAuthFixture(t)
	ctx := context.Background()

	adminToken, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	claims, err := tokens.Verify(adminToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, int64(1), claims.UserID)

	customerToken, err := svc.Login(ctx, "customer", "cust123")
	require.NoError(t, err)
	claims, err = tokens.Verify(customerToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, claims.Role)
	assert.Equal(t, int64(2), claims.UserID)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, errWrongSecret := svc.Login(ctx, "admin", "wrong")
	_, errUnknownUser := svc.Login(ctx, "ghost", "admin123")

	assert.ErrorIs(t, errWrongSecret, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongSecret.Error(), errUnknownUser.Error())
}
