package store

import (
	"sync"
	"testing"

	"shop-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const customerID = int64(2)

func newSeededStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	require.NoError(t, s.SeedPrincipals(DefaultPrincipals()))
	s.SeedProducts(DefaultProducts())
	return s
}

func TestSeedPrincipals(t *testing.T) {
	s := newSeededStore(t)

	p, ok := s.GetPrincipalByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, p.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(p.SecretHash, []byte("admin123")))
	assert.Error(t, bcrypt.CompareHashAndPassword(p.SecretHash, []byte("admin124")))

	_, ok = s.GetPrincipalByUsername("nobody")
	assert.False(t, ok)
}

func TestSeedPrincipalsRejectsDuplicates(t *testing.T) {
	s := NewStore()
	err := s.SeedPrincipals([]SeedPrincipal{
		{Username: "admin", Secret: "a", Role: models.RoleAdmin},
		{Username: "admin", Secret: "b", Role: models.RoleCustomer},
	})
	assert.Error(t, err)
}

func TestListProductsPagination(t *testing.T) {
	s := newSeededStore(t)

	page1 := s.ListProducts("", 1, 5)
	assert.Equal(t, 6, page1.TotalProducts)
	assert.Len(t, page1.Products, 5)

	page2 := s.ListProducts("", 2, 5)
	assert.Equal(t, 6, page2.TotalProducts)
	assert.Len(t, page2.Products, 1)
	assert.Equal(t, int64(6), page2.Products[0].ID)

	page9 := s.ListProducts("", 9, 5)
	assert.Equal(t, 6, page9.TotalProducts)
	assert.Empty(t, page9.Products)
}

func TestListProductsSearch(t *testing.T) {
	s := newSeededStore(t)

	result := s.ListProducts("LAP", 1, 5)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Laptop", result.Products[0].Name)
	assert.Equal(t, 1, result.TotalProducts)

	result = s.ListProducts("phone", 1, 10)
	// Smartphone and Headphones
	assert.Equal(t, 2, result.TotalProducts)
}

func TestProductIDsNeverReused(t *testing.T) {
	s := newSeededStore(t)

	require.NoError(t, s.DeleteProduct(3))
	_, err := s.GetProduct(3)
	assert.ErrorIs(t, err, ErrProductNotFound)

	created := s.CreateProduct("Webcam", 4500)
	assert.Equal(t, int64(7), created.ID)

	again := s.CreateProduct("Desk", 9000)
	assert.Equal(t, int64(8), again.ID)
}

func TestUpdateProductPartial(t *testing.T) {
	s := newSeededStore(t)

	newPrice := int64(70000)
	updated, err := s.UpdateProduct(1, nil, &newPrice)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, int64(70000), updated.Price)

	newName := "Gaming Laptop"
	updated, err = s.UpdateProduct(1, &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "Gaming Laptop", updated.Name)
	assert.Equal(t, int64(70000), updated.Price)

	_, err = s.UpdateProduct(99, &newName, nil)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddCartItemAccumulates(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddCartItem(customerID, 1, 2)
	require.NoError(t, err)

	cart, err := s.AddCartItem(customerID, 1, 3)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, models.CartLine{ProductID: 1, Quantity: 5}, cart[0])
}

func TestAddCartItemValidation(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddCartItem(customerID, 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = s.AddCartItem(customerID, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = s.AddCartItem(customerID, 1, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Empty(t, s.GetCart(customerID))
}

func TestSetCartItemQuantityOverwrites(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.SetCartItemQuantity(customerID, 1, 4)
	assert.ErrorIs(t, err, ErrCartNotFound)

	_, err = s.AddCartItem(customerID, 1, 2)
	require.NoError(t, err)

	cart, err := s.SetCartItemQuantity(customerID, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart[0].Quantity)

	_, err = s.SetCartItemQuantity(customerID, 2, 1)
	assert.ErrorIs(t, err, ErrProductNotInCart)
}

func TestRemoveCartItem(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.RemoveCartItem(customerID, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)

	_, err = s.AddCartItem(customerID, 1, 2)
	require.NoError(t, err)

	// Removing a line that was never added is a no-op.
	cart, err := s.RemoveCartItem(customerID, 5)
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	cart, err = s.RemoveCartItem(customerID, 1)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestConcurrentAddCartItem(t *testing.T) {
	s := newSeededStore(t)

	const workers = 16
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddCartItem(customerID, 1, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	cart := s.GetCart(customerID)
	require.Len(t, cart, 1)
	assert.Equal(t, workers, cart[0].Quantity)
}

func TestPlaceOrderTotal(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddCartItem(customerID, 1, 1) // Laptop 75000
	require.NoError(t, err)
	_, err = s.AddCartItem(customerID, 5, 2) // Mouse 800 x2
	require.NoError(t, err)

	order, err := s.PlaceOrder(customerID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.OrderID)
	assert.Equal(t, customerID, order.UserID)
	assert.Equal(t, int64(76600), order.Total)
	assert.Len(t, order.Items, 2)
	assert.False(t, order.Date.IsZero())

	// The cart is cleared, not deleted: updating it now is CartNotFound-free
	// but placing again fails on emptiness.
	assert.Empty(t, s.GetCart(customerID))
	_, err = s.PlaceOrder(customerID)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.PlaceOrder(customerID)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, s.ListOrders(customerID))
}

func TestPlaceOrderSnapshotIsolation(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddCartItem(customerID, 1, 1)
	require.NoError(t, err)

	order, err := s.PlaceOrder(customerID)
	require.NoError(t, err)

	// Mutate the cart and the catalog after placement.
	_, err = s.AddCartItem(customerID, 1, 9)
	require.NoError(t, err)
	newPrice := int64(1)
	_, err = s.UpdateProduct(1, nil, &newPrice)
	require.NoError(t, err)

	stored := s.ListOrders(customerID)
	require.Len(t, stored, 1)
	assert.Equal(t, []models.CartLine{{ProductID: 1, Quantity: 1}}, stored[0].Items)
	assert.Equal(t, int64(75000), stored[0].Total)

	// The copy handed back at placement is equally isolated.
	order.Items[0].Quantity = 42
	stored = s.ListOrders(customerID)
	assert.Equal(t, 1, stored[0].Items[0].Quantity)
}

func TestPlaceOrderFailsOnDeletedProduct(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddCartItem(customerID, 3, 1)
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(3))

	_, err = s.PlaceOrder(customerID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// The failed placement mutates nothing.
	assert.Len(t, s.GetCart(customerID), 1)
	assert.Empty(t, s.ListOrders(customerID))
}

func TestListOrdersScopedToUser(t *testing.T) {
	s := newSeededStore(t)
	otherID := int64(7)

	_, err := s.AddCartItem(customerID, 2, 1)
	require.NoError(t, err)
	_, err = s.AddCartItem(otherID, 4, 1)
	require.NoError(t, err)

	first, err := s.PlaceOrder(customerID)
	require.NoError(t, err)
	second, err := s.PlaceOrder(otherID)
	require.NoError(t, err)

	// Order ids come from one global counter.
	assert.Equal(t, int64(1), first.OrderID)
	assert.Equal(t, int64(2), second.OrderID)

	mine := s.ListOrders(customerID)
	require.Len(t, mine, 1)
	assert.Equal(t, customerID, mine[0].UserID)
}
