package store

import (
	"errors"
	"fmt"
	"sync"

	"shop-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors returned by store operations. Handlers map these to HTTP
// status codes with errors.Is.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrProductNotInCart = errors.New("product not in cart")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

// Store owns all mutable state: principals, products, carts and the order
// ledger. A single RWMutex guards everything, so compound transitions such as
// PlaceOrder are atomic with respect to every other operation.
type Store struct {
	mu sync.RWMutex

	principals map[string]models.Principal

	products      []models.Product
	nextProductID int64

	carts map[int64][]models.CartLine

	orders      []models.Order
	nextOrderID int64
}

// NewStore creates an empty store. Seed data is loaded separately so tests
// can start from whatever state they need.
func NewStore() *Store {
	return &Store{
		principals: make(map[string]models.Principal),
		carts:      make(map[int64][]models.CartLine),
	}
}

// SeedPrincipal is the plaintext form of a principal used only at seed time.
type SeedPrincipal struct {
	Username string
	Secret   string
	Role     string
}

// SeedPrincipals registers the fixed principal set. Secrets are bcrypt-hashed
// here; the plaintext is never retained.
func (s *Store) SeedPrincipals(seeds []SeedPrincipal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, seed := range seeds {
		if _, exists := s.principals[seed.Username]; exists {
			return fmt.Errorf("duplicate seed username: %s", seed.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Secret), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash secret for %s: %w", seed.Username, err)
		}

		s.principals[seed.Username] = models.Principal{
			ID:         int64(i) + 1,
			Username:   seed.Username,
			SecretHash: hash,
			Role:       seed.Role,
		}
	}

	return nil
}

// SeedProducts loads the initial catalog. The id counter starts at the
// highest seeded id so later creations never collide.
func (s *Store) SeedProducts(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, products...)
	for _, p := range products {
		if p.ID > s.nextProductID {
			s.nextProductID = p.ID
		}
	}
}

// GetPrincipalByUsername looks up a seeded principal.
func (s *Store) GetPrincipalByUsername(username string) (models.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.principals[username]
	return p, ok
}
