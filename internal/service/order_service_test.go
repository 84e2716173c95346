package service

import (
	"context"
	"sync"
	"testing"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []interface{}
}

func (p *capturePublisher) PublishEvent(ctx context.Context, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) captured() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interface{}(nil), p.events...)
}

func newOrderFixture(t *testing.T) (*OrderService, *CartService, *capturePublisher) {
	t.Helper()

	db := store.NewStore()
	require.NoError(t, db.SeedPrincipals(store.DefaultPrincipals()))
	db.SeedProducts(store.DefaultProducts())

	capture := &capturePublisher{}
	events := broker.NewEventPublisher(capture)

	return NewOrderService(db, events), NewCartService(db), capture
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	orders, carts, capture := newOrderFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(2, 1, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(2, 5, 2)
	require.NoError(t, err)

	order, err := orders.PlaceOrder(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(76600), order.Total)

	captured := capture.captured()
	require.Len(t, captured, 1)

	event, ok := captured[0].(*models.OrderPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, models.EventTypeOrderPlaced, event.EventType)
	assert.Equal(t, order.OrderID, event.OrderID)
	assert.Equal(t, order.Total, event.Total)
	assert.NotEmpty(t, event.EventID)
	assert.Len(t, event.Items, 2)
}

func TestPlaceOrderFailurePublishesNothing(t *testing.T) {
	orders, _, capture := newOrderFixture(t)

	_, err := orders.PlaceOrder(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
	assert.Empty(t, capture.captured())
}

func TestCatalogMutationsPublishEvents(t *testing.T) {
	db := store.NewStore()
	db.SeedProducts(store.DefaultProducts())

	capture := &capturePublisher{}
	catalog := NewCatalogService(db, broker.NewEventPublisher(capture))
	ctx := context.Background()

	created := catalog.Create(ctx, "Webcam", 4500)
	assert.Equal(t, int64(7), created.ID)

	name := "HD Webcam"
	_, err := catalog.Update(ctx, created.ID, &name, nil)
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(ctx, created.ID))

	captured := capture.captured()
	require.Len(t, captured, 3)
	assert.IsType(t, &models.ProductCreatedEvent{}, captured[0])
	assert.IsType(t, &models.ProductUpdatedEvent{}, captured[1])
	assert.IsType(t, &models.ProductDeletedEvent{}, captured[2])
}
