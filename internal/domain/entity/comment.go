package entity

import "time"

// Comment belongs to a post. Username is a snapshot of the author's name
// taken at creation time; it is intentionally not kept in sync with later
// profile renames.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
