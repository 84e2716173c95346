package service

import (
	"context"
	"errors"
	"time"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles the cart-to-order transition and order reads.
type OrderService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(store *store.Store, eventPublisher *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// PlaceOrder converts the caller's cart into an immutable order. The store
// performs the transition atomically; this layer adds tracing, metrics and
// the OrderPlaced event.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64) (models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.PlaceOrder")
	defer span.End()

	order, err := s.store.PlaceOrder(userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyCart):
			util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		case errors.Is(err, store.ErrProductNotFound):
			util.OrdersFailedTotal.WithLabelValues("product_missing").Inc()
		default:
			util.OrdersFailedTotal.WithLabelValues("other").Inc()
		}
		return models.Order{}, err
	}

	util.OrdersPlacedTotal.Inc()
	util.OrderTotalAmount.Observe(float64(order.Total))
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.OrderID),
		zap.Int64("user_id", order.UserID),
		zap.Int64("total", order.Total))

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Total:   order.Total,
		Items:   order.Items,
	}
	if err := s.eventPublisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event", zap.Error(err))
	}

	return order, nil
}

// ListOrders returns the caller's orders in insertion order.
func (s *OrderService) ListOrders(userID int64) []models.Order {
	return s.store.ListOrders(userID)
}
