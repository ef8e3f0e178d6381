package application

import (
	"context"
	"errors"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

// CategoryService manages the admin-curated category labels. Posts reference
// categories by title, so removing one leaves existing posts untouched.
type CategoryService struct {
	Categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, id Identity, title string) (*entity.Category, error) {
	cat := &entity.Category{UserID: id.AccountID, Title: title}
	if err := s.Categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.Categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Categories.Delete(ctx, id)
}
