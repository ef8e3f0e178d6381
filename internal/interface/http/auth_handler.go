package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/pkg/response"
	"github.com/blogora/blogora/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=2,max=100"`
		Email    string `json:"email" binding:"required,email,max=100"`
		Password string `json:"password" binding:"required,strongpwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if _, err := h.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		h.Logger.WithError(err).WithField("email", req.Email).Warn("registration failed")
		writeError(c, err, "user not found")
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "a code was sent to you, please verify your email address", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email,max=100"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":           u.ID,
		"username":     u.Username,
		"profilePhoto": u.ProfilePhoto,
		"isAdmin":      u.IsAdmin,
		"token":        token,
	}, "logged in", nil)
}

// Verify GET /api/auth/:userId/verify/:token
func (h *AuthHandler) Verify(c *gin.Context) {
	err := h.Auth.VerifyAccount(c.Request.Context(), c.Param("userId"), c.Param("token"))
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "your account has been verified", nil)
}
