package service

import (
	"context"
	"time"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService handles product catalog operations. Reads go straight to
// the store; mutations additionally emit domain events and metrics.
type CatalogService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *store.Store, eventPublisher *broker.EventPublisher) *CatalogService {
	return &CatalogService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// List returns one page of products matching the search term.
func (s *CatalogService) List(search string, page, limit int) models.ProductList {
	return s.store.ListProducts(search, page, limit)
}

// Get retrieves a single product.
func (s *CatalogService) Get(id int64) (models.Product, error) {
	return s.store.GetProduct(id)
}

// Create adds a product to the catalog.
func (s *CatalogService) Create(ctx context.Context, name string, price int64) models.Product {
	product := s.store.CreateProduct(name, price)

	util.ProductMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	event := &models.ProductCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeProductCreated,
			Timestamp: time.Now(),
		},
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}
	if err := s.eventPublisher.PublishProductCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductCreated event", zap.Error(err))
	}

	return product
}

// Update applies a partial update; nil fields are left unchanged.
func (s *CatalogService) Update(ctx context.Context, id int64, name *string, price *int64) (models.Product, error) {
	product, err := s.store.UpdateProduct(id, name, price)
	if err != nil {
		return models.Product{}, err
	}

	util.ProductMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info("Product updated", zap.Int64("product_id", product.ID))

	event := &models.ProductUpdatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeProductUpdated,
			Timestamp: time.Now(),
		},
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}
	if err := s.eventPublisher.PublishProductUpdated(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductUpdated event", zap.Error(err))
	}

	return product, nil
}

// Delete removes a product. Its id is never handed out again.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(id); err != nil {
		return err
	}

	util.ProductMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info("Product deleted", zap.Int64("product_id", id))

	event := &models.ProductDeletedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeProductDeleted,
			Timestamp: time.Now(),
		},
		ProductID: id,
	}
	if err := s.eventPublisher.PublishProductDeleted(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductDeleted event", zap.Error(err))
	}

	return nil
}
