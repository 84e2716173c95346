package models

import "time"

// Roles a principal can hold.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Principal is a registered user. Principals are seeded at startup and
// immutable afterwards; SecretHash is a bcrypt hash, never the raw secret.
type Principal struct {
	ID         int64
	Username   string
	SecretHash []byte
	Role       string
}

// Identity is a resolved, authenticated caller. It is derived from token
// claims per request and never stored server-side.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Product is a catalog entry. IDs are allocated from a monotonic counter and
// never reused, even after deletion.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CartLine is one entry in a customer's cart. Quantity is always positive.
type CartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Order is an immutable record of a placed order. Items is a snapshot of the
// cart at placement time; later cart or catalog changes do not affect it.
type Order struct {
	OrderID int64      `json:"orderId"`
	UserID  int64      `json:"userId"`
	Items   []CartLine `json:"items"`
	Total   int64      `json:"total"`
	Date    time.Time  `json:"date"`
}

// ProductList is a page of catalog results.
type ProductList struct {
	Page          int       `json:"page"`
	Limit         int       `json:"limit"`
	TotalProducts int       `json:"totalProducts"`
	Products      []Product `json:"products"`
}
