package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogora/blogora/internal/domain/entity"
)

func newCommentFixture(t *testing.T) (*CommentService, *memUsers, *memPosts, *memComments, *entity.User, *entity.Post) {
	t.Helper()
	users := newMemUsers()
	posts := newMemPosts()
	comments := newMemComments()
	svc := NewCommentService(comments, posts, users)

	u := seedUser(t, users, "alice", "alice@example.com")
	p := &entity.Post{UserID: u.ID, Title: "a post"}
	require.NoError(t, posts.Create(context.Background(), p))
	return svc, users, posts, comments, u, p
}

func TestCreateCommentSnapshotsUsername(t *testing.T) {
	svc, users, _, _, u, p := newCommentFixture(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, Identity{AccountID: u.ID}, p.ID, "first!")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Username)

	// A later rename must not rewrite the stored snapshot.
	newName := "alicia"
	stored, _ := users.GetByID(ctx, u.ID)
	stored.Username = newName
	require.NoError(t, users.Update(ctx, stored))

	got, err := svc.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)
}

func TestCreateCommentMissingPost(t *testing.T) {
	svc, _, _, _, u, _ := newCommentFixture(t)

	_, err := svc.Create(context.Background(), Identity{AccountID: u.ID}, "missing", "text")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentDeletedAuthor(t *testing.T) {
	svc, users, _, _, u, p := newCommentFixture(t)
	ctx := context.Background()

	// A still-valid token for an account that was since deleted.
	require.NoError(t, users.Delete(ctx, u.ID))

	_, err := svc.Create(ctx, Identity{AccountID: u.ID}, p.ID, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	svc, _, _, comments, u, p := newCommentFixture(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, Identity{AccountID: u.ID}, p.ID, "original")
	require.NoError(t, err)

	_, err = svc.Update(ctx, Identity{AccountID: "intruder"}, c.ID, "defaced")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, Identity{AccountID: "admin", IsAdmin: true}, c.ID, "defaced")
	assert.ErrorIs(t, err, ErrForbidden, "admins moderate by deletion, not edits")

	stored, _ := comments.GetByID(ctx, c.ID)
	assert.Equal(t, "original", stored.Text)

	got, err := svc.Update(ctx, Identity{AccountID: u.ID}, c.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text)
}

func TestDeleteCommentOwnerOrAdmin(t *testing.T) {
	svc, _, _, _, u, p := newCommentFixture(t)
	ctx := context.Background()

	c1, err := svc.Create(ctx, Identity{AccountID: u.ID}, p.ID, "one")
	require.NoError(t, err)
	c2, err := svc.Create(ctx, Identity{AccountID: u.ID}, p.ID, "two")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, Identity{AccountID: "intruder"}, c1.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, Identity{AccountID: u.ID}, c1.ID))
	require.NoError(t, svc.Delete(ctx, Identity{AccountID: "admin", IsAdmin: true}, c2.ID))

	assert.ErrorIs(t, svc.Delete(ctx, Identity{AccountID: u.ID}, c1.ID), ErrNotFound)
}
