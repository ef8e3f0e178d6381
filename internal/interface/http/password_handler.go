package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/pkg/response"
	"github.com/blogora/blogora/pkg/validation"
)

type PasswordHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewPasswordHandler(auth *application.AuthService, logger *logrus.Logger) *PasswordHandler {
	return &PasswordHandler{Auth: auth, Logger: logger}
}

// SendResetLink POST /api/password/reset-password-link
func (h *PasswordHandler) SendResetLink(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.Logger.WithError(err).Warn("password reset request failed")
		writeError(c, err, "user not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset link sent to your email address, please check your inbox", nil)
}

// ValidateLink GET /api/password/reset-password/:userId/:token
func (h *PasswordHandler) ValidateLink(c *gin.Context) {
	err := h.Auth.ValidateResetLink(c.Request.Context(), c.Param("userId"), c.Param("token"))
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "valid url", nil)
}

// ResetPassword POST /api/password/reset-password/:userId/:token
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required,strongpwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Auth.ConfirmPasswordReset(c.Request.Context(), c.Param("userId"), c.Param("token"), req.Password)
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset successfully, please login", nil)
}
