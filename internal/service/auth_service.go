package service

import (
	"context"
	"errors"

	"shop-service/internal/auth"
	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// secrets; callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the bcrypt comparison on the unknown-username path, so
// both failure modes cost roughly the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("shop-service-dummy"), bcrypt.DefaultCost)

// AuthService authenticates principals and issues identity tokens.
type AuthService struct {
	store  *store.Store
	tokens auth.TokenService
	logger *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(store *store.Store, tokens auth.TokenService) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		logger: util.GetLogger(),
	}
}

// Login validates credentials against the seeded principal set and returns a
// signed token on success.
func (s *AuthService) Login(ctx context.Context, username, secret string) (string, error) {
	_, span := util.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	principal, ok := s.store.GetPrincipalByUsername(username)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
		util.LoginFailuresTotal.Inc()
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(principal.SecretHash, []byte(secret)); err != nil {
		util.LoginFailuresTotal.Inc()
		return "", ErrInvalidCredentials
	}

	identity := models.Identity{
		UserID:   principal.ID,
		Username: principal.Username,
		Role:     principal.Role,
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", err
	}

	util.LoginsTotal.Inc()
	s.logger.Info("Principal logged in",
		zap.Int64("user_id", principal.ID),
		zap.String("role", principal.Role))

	return token, nil
}
