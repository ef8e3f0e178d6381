package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, cat *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (user_id, title)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, cat.UserID, cat.Title)
	return row.Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	cat := &entity.Category{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, created_at, updated_at FROM categories WHERE id = $1
	`, id).Scan(&cat.ID, &cat.UserID, &cat.Title, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, created_at, updated_at FROM categories ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]*entity.Category, 0)
	for rows.Next() {
		cat := &entity.Category{}
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Title, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	// Posts keep the category label; only the category row goes away.
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
