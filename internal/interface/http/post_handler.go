package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/response"
	"github.com/blogora/blogora/pkg/validation"
)

type PostHandler struct {
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(posts *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Posts: posts, Logger: logger}
}

// Create POST /api/posts (auth, multipart)
func (h *PostHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `form:"title" binding:"required,min=2,max=200"`
		Description string `form:"description" binding:"required,min=10"`
		Category    string `form:"category" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id := middleware.IdentityFrom(c)
	p, err := h.Posts.Create(c.Request.Context(), id, req.Title, req.Description, req.Category, middleware.StagedImage(c))
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", id.AccountID).Warn("post create failed")
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusCreated, p, "post created", nil)
}

// List GET /api/posts (public) with ?pageNumber= or ?category=
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("pageNumber"))
	posts, err := h.Posts.List(c.Request.Context(), page, c.Query("category"))
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// Count GET /api/posts/count (public)
func (h *PostHandler) Count(c *gin.Context) {
	n, err := h.Posts.Count(c.Request.Context())
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, n, "posts count", nil)
}

// Search GET /api/posts/search?q= (auth)
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Posts.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("post search failed")
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// Get GET /api/posts/:id (public)
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// Update PUT /api/posts/:id (owner)
func (h *PostHandler) Update(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,min=2,max=200"`
		Description string `json:"description" binding:"required,min=10"`
		Category    string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Posts.Update(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), req.Title, req.Description, req.Category)
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, p, "post updated", nil)
}

// UpdateImage PUT /api/posts/update-image/:id (owner, multipart)
func (h *PostHandler) UpdateImage(c *gin.Context) {
	p, err := h.Posts.UpdateImage(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), middleware.StagedImage(c))
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, p, "post image updated", nil)
}

// ToggleLike PUT /api/posts/like/:id (auth)
func (h *PostHandler) ToggleLike(c *gin.Context) {
	p, err := h.Posts.ToggleLike(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusCreated, p, "like toggled", nil)
}

// Delete DELETE /api/posts/:id (owner or admin)
func (h *PostHandler) Delete(c *gin.Context) {
	postID := c.Param("id")
	if err := h.Posts.Delete(c.Request.Context(), middleware.IdentityFrom(c), postID); err != nil {
		h.Logger.WithError(err).WithField("post_id", postID).Warn("post delete failed")
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"postId": postID}, "post has been deleted successfully", nil)
}
