package entity

import "time"

// DefaultProfilePhotoURL is assigned to accounts that never uploaded a photo.
const DefaultProfilePhotoURL = "https://i.pinimg.com/474x/76/4d/59/764d59d32f61f0f91dec8c442ab052c5.jpg"

// Image references an object held by the blob store. BlobID is empty for
// the default profile photo, which lives outside the store.
type Image struct {
	URL    string `json:"url"`
	BlobID string `json:"publicId"`
}

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Bio          string    `json:"bio"`
	ProfilePhoto Image     `json:"profilePhoto"`
	IsAdmin      bool      `json:"isAdmin"`
	IsVerified   bool      `json:"isAccountVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Posts is populated on profile reads, not persisted on the row.
	Posts []*Post `json:"posts,omitempty"`
}
