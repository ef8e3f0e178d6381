package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

func TestCategoryLifecycle(t *testing.T) {
	cats := newMemCategories()
	svc := NewCategoryService(cats)
	ctx := context.Background()

	c, err := svc.Create(ctx, Identity{AccountID: "admin", IsAdmin: true}, "tech")
	require.NoError(t, err)
	assert.Equal(t, "tech", c.Title)
	assert.Equal(t, "admin", c.UserID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrNotFound)
}

func TestCategoryDeleteLeavesPostLabels(t *testing.T) {
	cats := newMemCategories()
	posts := newMemPosts()
	svc := NewCategoryService(cats)
	ctx := context.Background()

	c, err := svc.Create(ctx, Identity{AccountID: "admin", IsAdmin: true}, "tech")
	require.NoError(t, err)
	require.NoError(t, posts.Create(ctx, &entity.Post{UserID: "u1", Title: "post", Category: "tech"}))

	require.NoError(t, svc.Delete(ctx, c.ID))

	remaining, err := posts.List(ctx, repository.PostQuery{Category: "tech"})
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "posts keep the dangling label")
}
