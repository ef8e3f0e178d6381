package entity

import "time"

// Category is an admin-managed label. Deleting one leaves posts that carry
// its title untouched.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
