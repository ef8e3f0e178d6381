package repository

import (
	"context"

	"github.com/blogora/blogora/internal/domain/entity"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	List(ctx context.Context) ([]*entity.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	// Update persists the text field.
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
