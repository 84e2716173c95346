package store

import (
	"fmt"
	"time"

	"shop-service/internal/models"
)

// PlaceOrder converts the caller's cart into an immutable order: it totals
// the cart against current catalog prices, allocates the next order id,
// snapshots the lines, appends to the ledger and clears the cart. The whole
// transition runs under the write lock, so either every step happens or none
// does — a failed placement leaves the cart and the ledger untouched.
//
// A cart line whose product was deleted after it was added fails the order
// with ErrProductNotFound; we never invent a price for a product the catalog
// no longer knows.
func (s *Store) PlaceOrder(userID int64) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total int64
	for _, line := range cart {
		priced := false
		for _, p := range s.products {
			if p.ID == line.ProductID {
				total += p.Price * int64(line.Quantity)
				priced = true
				break
			}
		}
		if !priced {
			return models.Order{}, fmt.Errorf("%w: %d", ErrProductNotFound, line.ProductID)
		}
	}

	s.nextOrderID++
	order := models.Order{
		OrderID: s.nextOrderID,
		UserID:  userID,
		Items:   cloneLines(cart),
		Total:   total,
		Date:    time.Now().UTC(),
	}

	s.orders = append(s.orders, order)
	s.carts[userID] = []models.CartLine{}

	return cloneOrder(order), nil
}

// ListOrders returns the caller's orders in insertion order. Items are
// deep-copied so callers cannot reach into the ledger.
func (s *Store) ListOrders(userID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func cloneOrder(o models.Order) models.Order {
	clone := o
	clone.Items = cloneLines(o.Items)
	return clone
}
