package repository

import (
	"context"

	"github.com/blogora/blogora/internal/domain/entity"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts an unverified account; ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update persists username, password hash and bio.
	Update(ctx context.Context, u *entity.User) error
	UpdateProfilePhoto(ctx context.Context, id string, img entity.Image) error
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}
