package store

import (
	"fmt"
	"strings"

	"shop-service/internal/models"
)

// ListProducts returns one page of products whose name contains search
// (case-insensitive). Pagination is 1-indexed and clamped: an out-of-range
// page yields an empty item list, not an error. TotalProducts counts all
// matches regardless of page.
func (s *Store) ListProducts(search string, page, limit int) models.ProductList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	needle := strings.ToLower(search)
	filtered := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}

	start := (page - 1) * limit
	end := page * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]models.Product, end-start)
	copy(items, filtered[start:end])

	return models.ProductList{
		Page:          page,
		Limit:         limit,
		TotalProducts: len(filtered),
		Products:      items,
	}
}

// GetProduct retrieves a product by id.
func (s *Store) GetProduct(id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

// CreateProduct appends a new product with the next monotonic id. Ids are
// never reused, even after deletions, so order snapshots stay unambiguous.
func (s *Store) CreateProduct(name string, price int64) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	product := models.Product{
		ID:    s.nextProductID,
		Name:  name,
		Price: price,
	}
	s.products = append(s.products, product)
	return product
}

// UpdateProduct applies a partial update: only non-nil fields change.
func (s *Store) UpdateProduct(id int64, name *string, price *int64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if name != nil {
			s.products[i].Name = *name
		}
		if price != nil {
			s.products[i].Price = *price
		}
		return s.products[i], nil
	}
	return models.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

// DeleteProduct removes a product from the catalog. The id counter is not
// rewound.
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrProductNotFound, id)
}
