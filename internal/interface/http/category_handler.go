package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/response"
	"github.com/blogora/blogora/pkg/validation"
)

type CategoryHandler struct {
	Categories *application.CategoryService
}

func NewCategoryHandler(categories *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

// Create POST /api/categories (admin)
func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Categories.Create(c.Request.Context(), middleware.IdentityFrom(c), req.Title)
	if err != nil {
		writeError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created", nil)
}

// List GET /api/categories (public)
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", nil)
}

// Delete DELETE /api/categories/:id (admin)
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "category not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "category has been deleted successfully", nil)
}
