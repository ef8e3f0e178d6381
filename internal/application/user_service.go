package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
	"github.com/blogora/blogora/pkg/helpers"
)

// UserService handles profile reads and edits, avatar storage and the full
// account takedown cascade.
type UserService struct {
	Users  repository.UserRepository
	Posts  repository.PostRepository
	Blobs  BlobStore
	Logger *logrus.Logger

	// Comments is needed for the delete cascade only.
	Comments repository.CommentRepository
}

func NewUserService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository, blobs BlobStore, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		Blobs:    blobs,
		Logger:   logger,
	}
}

// List returns every account, each with its posts populated.
func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		posts, err := s.Posts.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		u.Posts = posts
	}
	return users, nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.Users.Count(ctx)
}

// Get returns the account with its posts populated.
func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	posts, err := s.Posts.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Posts = posts
	return u, nil
}

// UserUpdate carries the editable profile fields. Nil pointers leave the
// field untouched.
type UserUpdate struct {
	Username *string
	Password *string
	Bio      *string
}

// Update edits the profile. A new password is hashed before storage.
func (s *UserService) Update(ctx context.Context, id string, upd UserUpdate) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Password != nil {
		hash, err := helpers.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UploadProfilePhoto replaces the avatar. The new blob goes up and the row
// is repointed before the old one is removed; a failed removal surfaces as an
// error. The stock default photo has no blob id and is never removed.
func (s *UserService) UploadProfilePhoto(ctx context.Context, id string, img *ImageUpload) (*entity.User, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	objectPath := blobPath("avatars", img.Filename)
	url, err := s.Blobs.Upload(ctx, objectPath, img.ContentType, img.File)
	if err != nil {
		return nil, fmt.Errorf("%w: uploading profile photo: %v", ErrUpstream, err)
	}
	old := u.ProfilePhoto.BlobID
	u.ProfilePhoto = entity.Image{URL: url, BlobID: objectPath}
	if err := s.Users.UpdateProfilePhoto(ctx, id, u.ProfilePhoto); err != nil {
		return nil, err
	}
	if old != "" {
		if err := s.Blobs.Remove(ctx, old); err != nil {
			return nil, fmt.Errorf("%w: removing replaced profile photo: %v", ErrUpstream, err)
		}
	}
	return u, nil
}

// Delete removes the account and everything it owns: posts with their image
// blobs, comments and the avatar blob. Rows are removed before blobs; a blob
// failure surfaces as an error even though the rows are already gone.
func (s *UserService) Delete(ctx context.Context, id string) error {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	posts, err := s.Posts.ListByUser(ctx, id)
	if err != nil {
		return err
	}
	blobIDs := make([]string, 0, len(posts)+1)
	for _, p := range posts {
		if p.Image.BlobID != "" {
			blobIDs = append(blobIDs, p.Image.BlobID)
		}
	}
	if u.ProfilePhoto.BlobID != "" {
		blobIDs = append(blobIDs, u.ProfilePhoto.BlobID)
	}
	if err := s.Comments.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.Posts.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Blobs.RemoveMany(ctx, blobIDs); err != nil {
		return fmt.Errorf("%w: removing account blobs: %v", ErrUpstream, err)
	}
	return nil
}
