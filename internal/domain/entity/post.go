package entity

import "time"

// Post is a content record owned by one account. Likes holds account ids,
// each at most once.
type Post struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       Image     `json:"image"`
	Likes       []string  `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Populated on reads.
	User     *User      `json:"user,omitempty"`
	Comments []*Comment `json:"comments,omitempty"`
}
