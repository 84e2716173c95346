package store

import "shop-service/internal/models"

// DefaultPrincipals is the fixed principal set loaded at startup. There is
// no runtime registration; these are the only identities the service knows.
func DefaultPrincipals() []SeedPrincipal {
	return []SeedPrincipal{
		{Username: "admin", Secret: "admin123", Role: models.RoleAdmin},
		{Username: "customer", Secret: "cust123", Role: models.RoleCustomer},
	}
}

// DefaultProducts is the catalog loaded at startup.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop", Price: 75000},
		{ID: 2, Name: "Smartphone", Price: 30000},
		{ID: 3, Name: "Headphones", Price: 2000},
		{ID: 4, Name: "Keyboard", Price: 1500},
		{ID: 5, Name: "Mouse", Price: 800},
		{ID: 6, Name: "Monitor", Price: 12000},
	}
}
