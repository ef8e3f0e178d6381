package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

const postCols = `p.id, p.user_id, p.title, p.description, p.category, p.image_url, p.image_id, p.likes, p.created_at, p.updated_at`

// postWithAuthor selects a post joined with its author (password excluded).
const postWithAuthor = `
	SELECT ` + postCols + `,
	       u.username, u.email, u.bio, u.profile_photo_url, u.profile_photo_id,
	       u.is_admin, u.is_verified, u.created_at, u.updated_at
	FROM posts p
	JOIN users u ON u.id = p.user_id`

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Category,
		&p.Image.URL, &p.Image.BlobID, &p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanPostWithAuthor(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	u := &entity.User{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Category,
		&p.Image.URL, &p.Image.BlobID, &p.Likes, &p.CreatedAt, &p.UpdatedAt,
		&u.Username, &u.Email, &u.Bio, &u.ProfilePhoto.URL, &u.ProfilePhoto.BlobID,
		&u.IsAdmin, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.ID = p.UserID
	p.User = u
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.Likes == nil {
		p.Likes = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, title, description, category, image_url, image_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, likes, created_at, updated_at
	`, p.UserID, p.Title, p.Description, p.Category, p.Image.URL, p.Image.BlobID)
	return row.Scan(&p.ID, &p.Likes, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return scanPostWithAuthor(r.pool.QueryRow(ctx, postWithAuthor+` WHERE p.id = $1`, id))
}

func (r *PostRepository) List(ctx context.Context, q repository.PostQuery) ([]*entity.Post, error) {
	query := postWithAuthor
	args := []any{}
	if q.Category != "" {
		query += ` WHERE p.category = $1`
		args = append(args, q.Category)
	}
	query += ` ORDER BY p.created_at DESC`
	if q.Page > 0 && q.PerPage > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, q.PerPage, (q.Page-1)*q.PerPage)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postCols+` FROM posts p WHERE p.user_id = $1 ORDER BY p.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&n)
	return n, err
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, description = $2, category = $3, updated_at = $4
		WHERE id = $5
	`, p.Title, p.Description, p.Category, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) UpdateImage(ctx context.Context, id string, img entity.Image) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts SET image_url = $1, image_id = $2, updated_at = now() WHERE id = $3
	`, img.URL, img.BlobID, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ToggleLike flips set membership in one statement so concurrent toggles by
// different accounts never lose each other's writes.
func (r *PostRepository) ToggleLike(ctx context.Context, id, accountID string) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET likes = CASE WHEN $2 = ANY(likes)
		                 THEN array_remove(likes, $2)
		                 ELSE array_append(likes, $2)
		            END,
		    updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, title, description, category, image_url, image_id, likes, created_at, updated_at
	`, id, accountID)

	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Category,
		&p.Image.URL, &p.Image.BlobID, &p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	return err
}

var _ repository.PostRepository = (*PostRepository)(nil)
