package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

const postsPerPage = 3

// PostService handles post CRUD, image storage and the like toggle. Search
// indexing is best effort; the database stays the source of truth.
type PostService struct {
	Posts        repository.PostRepository
	Comments     repository.CommentRepository
	Blobs        BlobStore
	ES           *elasticsearch.Client
	ESPostsIndex string
	Logger       *logrus.Logger
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, blobs BlobStore, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *PostService {
	return &PostService{
		Posts:        posts,
		Comments:     comments,
		Blobs:        blobs,
		ES:           es,
		ESPostsIndex: esIndex,
		Logger:       logger,
	}
}

// Create stores the image first, then the row. Every post carries exactly
// one image.
func (s *PostService) Create(ctx context.Context, id Identity, title, description, category string, img *ImageUpload) (*entity.Post, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	objectPath := blobPath("posts", img.Filename)
	url, err := s.Blobs.Upload(ctx, objectPath, img.ContentType, img.File)
	if err != nil {
		return nil, fmt.Errorf("%w: uploading post image: %v", ErrUpstream, err)
	}
	p := &entity.Post{
		UserID:      id.AccountID,
		Title:       title,
		Description: description,
		Category:    category,
		Image:       entity.Image{URL: url, BlobID: objectPath},
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

// Get returns a post with its author and comments populated.
func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Comments = comments
	return p, nil
}

// List returns a page of posts, newest first, optionally filtered by
// category label.
func (s *PostService) List(ctx context.Context, page int, category string) ([]*entity.Post, error) {
	q := repository.PostQuery{Category: category}
	if page > 0 {
		q.Page = page
		q.PerPage = postsPerPage
	}
	return s.Posts.List(ctx, q)
}

func (s *PostService) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	return s.Posts.ListByUser(ctx, userID)
}

func (s *PostService) Count(ctx context.Context) (int64, error) {
	return s.Posts.Count(ctx)
}

// Update edits title, description and category. Only the owner may edit;
// admins moderate by deletion, not by rewriting others' posts.
func (s *PostService) Update(ctx context.Context, id Identity, postID, title, description, category string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !IsSelf(id, p.UserID) {
		return nil, ErrForbidden
	}
	p.Title = title
	p.Description = description
	p.Category = category
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

// UpdateImage replaces the post image. The new blob is uploaded and the row
// repointed before the old blob is removed; a failed removal surfaces as an
// error even though the post already points at the new image.
func (s *PostService) UpdateImage(ctx context.Context, id Identity, postID string, img *ImageUpload) (*entity.Post, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !IsSelf(id, p.UserID) {
		return nil, ErrForbidden
	}
	objectPath := blobPath("posts", img.Filename)
	url, err := s.Blobs.Upload(ctx, objectPath, img.ContentType, img.File)
	if err != nil {
		return nil, fmt.Errorf("%w: uploading post image: %v", ErrUpstream, err)
	}
	old := p.Image.BlobID
	p.Image = entity.Image{URL: url, BlobID: objectPath}
	if err := s.Posts.UpdateImage(ctx, postID, p.Image); err != nil {
		return nil, err
	}
	if old != "" {
		if err := s.Blobs.Remove(ctx, old); err != nil {
			return nil, fmt.Errorf("%w: removing replaced post image: %v", ErrUpstream, err)
		}
	}
	return p, nil
}

// ToggleLike flips the caller's membership in the post's like set.
func (s *PostService) ToggleLike(ctx context.Context, id Identity, postID string) (*entity.Post, error) {
	p, err := s.Posts.ToggleLike(ctx, postID, id.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the post for its owner or an admin. Rows go first; if the
// blob removal then fails, the error surfaces even though the post is gone,
// since a reported success must mean full cleanup.
func (s *PostService) Delete(ctx context.Context, id Identity, postID string) error {
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !IsSelfOrAdmin(id, p.UserID) {
		return ErrForbidden
	}
	if err := s.Posts.Delete(ctx, postID); err != nil {
		return err
	}
	s.deindexPost(ctx, postID)
	if p.Image.BlobID != "" {
		if err := s.Blobs.Remove(ctx, p.Image.BlobID); err != nil {
			return fmt.Errorf("%w: removing post image: %v", ErrUpstream, err)
		}
	}
	return nil
}

// Search runs a multi_match query over the post index. Without a configured
// index it returns an empty result rather than failing.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"user_id":     p.UserID,
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"image_url":   p.Image.URL,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PostService) deindexPost(ctx context.Context, postID string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: postID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", postID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// blobPath builds a fresh object path under prefix, keeping the original
// file extension.
func blobPath(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return filepath.ToSlash(filepath.Join(prefix, uuid.NewString()+ext))
}
