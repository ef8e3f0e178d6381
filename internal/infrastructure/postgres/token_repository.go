package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// Issue is an upsert-or-fetch: when the account already holds a token the
// existing secret is returned untouched. xmax = 0 distinguishes a fresh
// insert from the conflict path.
func (r *TokenRepository) Issue(ctx context.Context, userID, secret string) (*entity.VerificationToken, bool, error) {
	t := &entity.VerificationToken{UserID: userID}
	var created bool
	err := r.pool.QueryRow(ctx, `
		INSERT INTO verification_tokens (user_id, secret)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = verification_tokens.user_id
		RETURNING secret, created_at, (xmax = 0)
	`, userID, secret).Scan(&t.Secret, &t.CreatedAt, &created)
	if err != nil {
		return nil, false, err
	}
	return t, created, nil
}

func (r *TokenRepository) Exists(ctx context.Context, userID, secret string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM verification_tokens WHERE user_id = $1 AND secret = $2)
	`, userID, secret).Scan(&ok)
	return ok, err
}

// ConsumeForVerification deletes the token and marks the account verified in
// a single statement, so a crash or a concurrent duplicate request can never
// consume the token without applying the state change.
func (r *TokenRepository) ConsumeForVerification(ctx context.Context, userID, secret string) error {
	res, err := r.pool.Exec(ctx, `
		WITH consumed AS (
			DELETE FROM verification_tokens
			WHERE user_id = $1 AND secret = $2
			RETURNING user_id
		)
		UPDATE users u
		SET is_verified = TRUE, updated_at = now()
		FROM consumed c
		WHERE u.id = c.user_id
	`, userID, secret)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ConsumeForPasswordReset stores the new hash and deletes the token
// atomically. Reset proves control of the email address, so non-admin
// accounts come out verified.
func (r *TokenRepository) ConsumeForPasswordReset(ctx context.Context, userID, secret, passwordHash string) error {
	res, err := r.pool.Exec(ctx, `
		WITH consumed AS (
			DELETE FROM verification_tokens
			WHERE user_id = $1 AND secret = $2
			RETURNING user_id
		)
		UPDATE users u
		SET password_hash = $3,
		    is_verified = (u.is_verified OR NOT u.is_admin),
		    updated_at = now()
		FROM consumed c
		WHERE u.id = c.user_id
	`, userID, secret, passwordHash)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
