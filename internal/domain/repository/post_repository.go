package repository

import (
	"context"

	"github.com/blogora/blogora/internal/domain/entity"
)

// PostQuery narrows List results. Page is 1-based; zero means no paging.
// Category filters by label when non-empty.
type PostQuery struct {
	Page     int
	PerPage  int
	Category string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, q PostQuery) ([]*entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	Count(ctx context.Context) (int64, error)
	// Update persists title, description and category.
	Update(ctx context.Context, p *entity.Post) error
	UpdateImage(ctx context.Context, id string, img entity.Image) error
	// ToggleLike atomically adds accountID to the like set when absent and
	// removes it when present, returning the updated post.
	ToggleLike(ctx context.Context, id, accountID string) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
