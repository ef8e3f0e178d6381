package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/response"
	"github.com/blogora/blogora/pkg/validation"
)

type UserHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(users *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// List GET /api/users/profile (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}

// Get GET /api/users/profile/:id (public)
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// Update PUT /api/users/profile/:id (self)
func (h *UserHandler) Update(c *gin.Context) {
	var req struct {
		Username *string `json:"username" binding:"omitempty,min=2,max=100"`
		Password *string `json:"password" binding:"omitempty,strongpwd"`
		Bio      *string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Users.Update(c.Request.Context(), c.Param("id"), application.UserUpdate{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success(c, http.StatusOK, u, "profile updated", nil)
}

// Count GET /api/users/count (admin)
func (h *UserHandler) Count(c *gin.Context) {
	n, err := h.Users.Count(c.Request.Context())
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success(c, http.StatusOK, n, "users count", nil)
}

// UploadProfilePhoto POST /api/users/profile/profile-photo-upload (auth)
func (h *UserHandler) UploadProfilePhoto(c *gin.Context) {
	img := middleware.StagedImage(c)
	if img == nil {
		response.Error[any](c, http.StatusBadRequest, "no image provided", nil)
		return
	}
	id := middleware.IdentityFrom(c)
	u, err := h.Users.UploadProfilePhoto(c.Request.Context(), id.AccountID, img)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", id.AccountID).Error("profile photo upload failed")
		writeError(c, err, "user not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profilePhoto": u.ProfilePhoto}, "your profile photo uploaded successfully", nil)
}

// Delete DELETE /api/users/profile/:id (self or admin)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Logger.WithError(err).WithField("user_id", c.Param("id")).Error("account delete failed")
		writeError(c, err, "user not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "user has been deleted successfully", nil)
}
