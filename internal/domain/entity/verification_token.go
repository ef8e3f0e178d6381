package entity

import "time"

// VerificationToken is a single-use secret proving control of an account's
// email address. The same token serves account verification and password
// reset. There is no expiry: possession of the secret is the only control
// until the token is consumed.
type VerificationToken struct {
	UserID    string    `json:"userId"`
	Secret    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
