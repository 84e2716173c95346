package worker

import (
	"context"
	"log"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/util"

	"go.uber.org/zap"
)

// OrderWorker consumes OrderPlaced events from the order topic and records
// fulfillment notifications. It is a downstream consumer of the ledger's
// events, not part of the request path; order placement never waits on it.
type OrderWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewOrderWorker creates a new order worker
func NewOrderWorker(consumer *broker.Consumer) *OrderWorker {
	w := &OrderWorker{
		consumer: consumer,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderPlaced(w.handleOrderPlaced)
	w.eventHandler = eventHandler

	return w
}

func (w *OrderWorker) handleOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	util.FulfillmentNotificationsTotal.Inc()
	w.logger.Info("Order ready for fulfillment",
		zap.Int64("order_id", event.OrderID),
		zap.Int64("user_id", event.UserID),
		zap.Int64("total", event.Total),
		zap.Int("item_count", len(event.Items)))
	return nil
}

// Start starts the worker
func (w *OrderWorker) Start(ctx context.Context) error {
	log.Println("Starting order worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *OrderWorker) Stop() error {
	log.Println("Stopping order worker...")
	return w.consumer.Close()
}
