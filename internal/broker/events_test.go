package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"shop-service/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandlerDispatchesOrderPlaced(t *testing.T) {
	handler := NewEventHandler()

	var received *models.OrderPlacedEvent
	handler.OnOrderPlaced(func(ctx context.Context, event *models.OrderPlacedEvent) error {
		received = event
		return nil
	})

	event := models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   "evt-1",
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID: 1,
		UserID:  2,
		Total:   76600,
		Items:   []models.CartLine{{ProductID: 1, Quantity: 1}},
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	err = handler.HandleMessage(context.Background(), kafka.Message{Value: raw})
	require.NoError(t, err)

	require.NotNil(t, received)
	assert.Equal(t, int64(1), received.OrderID)
	assert.Equal(t, int64(76600), received.Total)
}

func TestEventHandlerIgnoresUnknownTypes(t *testing.T) {
	handler := NewEventHandler()
	handler.OnOrderPlaced(func(ctx context.Context, event *models.OrderPlacedEvent) error {
		t.Fatal("handler should not fire for unknown event types")
		return nil
	})

	raw, err := json.Marshal(models.BaseEvent{
		EventID:   "evt-2",
		EventType: "SomethingElse",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	err = handler.HandleMessage(context.Background(), kafka.Message{Value: raw})
	assert.NoError(t, err)

	malformed := handler.HandleMessage(context.Background(), kafka.Message{Value: []byte("{")})
	assert.Error(t, malformed)
}
