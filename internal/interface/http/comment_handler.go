package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/response"
	"github.com/blogora/blogora/pkg/validation"
)

type CommentHandler struct {
	Comments *application.CommentService
}

func NewCommentHandler(comments *application.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

// Create POST /api/comments (auth)
func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		PostID string `json:"postId" binding:"required,uuid"`
		Text   string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Comments.Create(c.Request.Context(), middleware.IdentityFrom(c), req.PostID, req.Text)
	if err != nil {
		writeError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment created", nil)
}

// List GET /api/comments (admin)
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.Comments.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "comment not found")
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", nil)
}

// Update PUT /api/comments/:id (owner)
func (h *CommentHandler) Update(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Comments.Update(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), req.Text)
	if err != nil {
		writeError(c, err, "comment not found")
		return
	}
	response.Success(c, http.StatusOK, cm, "comment updated", nil)
}

// Delete DELETE /api/comments/:id (owner or admin)
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.Comments.Delete(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id")); err != nil {
		writeError(c, err, "comment not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "comment has been deleted successfully", nil)
}
