package service

import (
	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"go.uber.org/zap"
)

// CartService handles cart operations. Every operation is scoped to the
// calling identity's own cart; ownership is established upstream by access
// control, which only ever passes the caller's own user id down.
type CartService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store *store.Store) *CartService {
	return &CartService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// Get returns the caller's cart lines, empty if no cart exists yet.
func (s *CartService) Get(userID int64) []models.CartLine {
	return s.store.GetCart(userID)
}

// AddItem adds quantity of a product to the caller's cart. Quantities
// accumulate across repeated additions of the same product.
func (s *CartService) AddItem(userID, productID int64, quantity int) ([]models.CartLine, error) {
	cart, err := s.store.AddCartItem(userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	util.CartMutationsTotal.WithLabelValues("add").Inc()
	s.logger.Info("Cart item added",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity))

	return cart, nil
}

// SetItemQuantity overwrites the quantity of an existing line.
func (s *CartService) SetItemQuantity(userID, productID int64, quantity int) ([]models.CartLine, error) {
	cart, err := s.store.SetCartItemQuantity(userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	util.CartMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info("Cart item updated",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity))

	return cart, nil
}

// RemoveItem removes a product's line from the caller's cart.
func (s *CartService) RemoveItem(userID, productID int64) ([]models.CartLine, error) {
	cart, err := s.store.RemoveCartItem(userID, productID)
	if err != nil {
		return nil, err
	}

	util.CartMutationsTotal.WithLabelValues("remove").Inc()
	s.logger.Info("Cart item removed",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID))

	return cart, nil
}
