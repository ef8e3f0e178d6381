package repository

import (
	"context"

	"github.com/blogora/blogora/internal/domain/entity"
)

// TokenRepository persists single-use verification tokens, at most one per
// account. Consumption deletes the token and applies the account mutation it
// authorizes in one atomic step.
type TokenRepository interface {
	// Issue stores secret for the account unless a token already exists, in
	// which case the existing one is returned. The boolean reports whether a
	// new token was created.
	Issue(ctx context.Context, userID, secret string) (*entity.VerificationToken, bool, error)
	// Exists reports whether the account holds exactly this secret.
	Exists(ctx context.Context, userID, secret string) (bool, error)
	// ConsumeForVerification deletes the matching token and flips the account
	// to verified; ErrNotFound when no token matches.
	ConsumeForVerification(ctx context.Context, userID, secret string) error
	// ConsumeForPasswordReset deletes the matching token, stores the new
	// password hash, and marks non-admin accounts verified.
	ConsumeForPasswordReset(ctx context.Context, userID, secret, passwordHash string) error
}
