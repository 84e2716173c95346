package store

import (
	"fmt"

	"shop-service/internal/models"
)

// GetCart returns a copy of the caller's cart lines. A missing cart reads as
// empty, not as an error.
func (s *Store) GetCart(userID int64) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneLines(s.carts[userID])
}

// AddCartItem adds quantity of a product to the caller's cart, creating the
// cart lazily. If a line for the product already exists its quantity
// accumulates. The product must exist in the catalog at addition time; the
// existence check and the mutation happen under one lock, so the line can
// never reference a product deleted mid-call.
func (s *Store) AddCartItem(userID, productID int64, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productExists(productID) {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}

	cart := s.carts[userID]
	found := false
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartLine{ProductID: productID, Quantity: quantity})
	}
	s.carts[userID] = cart

	return cloneLines(cart), nil
}

// SetCartItemQuantity overwrites (does not accumulate) the quantity of an
// existing line.
func (s *Store) SetCartItemQuantity(userID, productID int64, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrCartNotFound, userID)
	}

	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity = quantity
			return cloneLines(cart), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProductNotInCart, productID)
}

// RemoveCartItem removes the line for a product. Removing a line that is not
// present is a no-op; only a missing cart is an error.
func (s *Store) RemoveCartItem(userID, productID int64) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrCartNotFound, userID)
	}

	for i := range cart {
		if cart[i].ProductID == productID {
			cart = append(cart[:i], cart[i+1:]...)
			break
		}
	}
	s.carts[userID] = cart

	return cloneLines(cart), nil
}

// productExists must be called with the lock held.
func (s *Store) productExists(productID int64) bool {
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}
