package models

import "time"

// Event types emitted on the order topic.
const (
	EventTypeOrderPlaced    = "OrderPlaced"
	EventTypeProductCreated = "ProductCreated"
	EventTypeProductUpdated = "ProductUpdated"
	EventTypeProductDeleted = "ProductDeleted"
)

// BaseEvent contains fields common to all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent is emitted after an order is appended to the ledger.
// Items carry the snapshotted cart lines, not live references.
type OrderPlacedEvent struct {
	BaseEvent
	OrderID int64      `json:"order_id"`
	UserID  int64      `json:"user_id"`
	Total   int64      `json:"total"`
	Items   []CartLine `json:"items"`
}

// ProductCreatedEvent is emitted when an admin adds a product.
type ProductCreatedEvent struct {
	BaseEvent
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

// ProductUpdatedEvent is emitted when an admin updates a product.
type ProductUpdatedEvent struct {
	BaseEvent
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

// ProductDeletedEvent is emitted when an admin deletes a product.
type ProductDeletedEvent struct {
	BaseEvent
	ProductID int64 `json:"product_id"`
}
