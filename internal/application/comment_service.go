package application

import (
	"context"
	"errors"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

// CommentService handles comments. The author's username is snapshotted at
// creation so a later rename does not rewrite old threads.
type CommentService struct {
	Comments repository.CommentRepository
	Posts    repository.PostRepository
	Users    repository.UserRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) *CommentService {
	return &CommentService{Comments: comments, Posts: posts, Users: users}
}

func (s *CommentService) Create(ctx context.Context, id Identity, postID, text string) (*entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// The token may outlive the account; a deleted author is a 404, not a 500.
	u, err := s.Users.GetByID(ctx, id.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c := &entity.Comment{
		PostID:   postID,
		UserID:   id.AccountID,
		Username: u.Username,
		Text:     text,
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) List(ctx context.Context) ([]*entity.Comment, error) {
	return s.Comments.List(ctx)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return s.Comments.ListByPost(ctx, postID)
}

// Update edits the comment text, owner only.
func (s *CommentService) Update(ctx context.Context, id Identity, commentID, text string) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !IsSelf(id, c.UserID) {
		return nil, ErrForbidden
	}
	c.Text = text
	if err := s.Comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a comment for its owner or an admin.
func (s *CommentService) Delete(ctx context.Context, id Identity, commentID string) error {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !IsSelfOrAdmin(id, c.UserID) {
		return ErrForbidden
	}
	return s.Comments.Delete(ctx, commentID)
}
