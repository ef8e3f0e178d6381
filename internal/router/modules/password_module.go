package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/container"
	handlers "github.com/blogora/blogora/internal/interface/http"
	"github.com/blogora/blogora/internal/interface/middleware"
)

type PasswordModule struct {
	Handler *handlers.PasswordHandler
}

func NewPasswordModule(h *handlers.PasswordHandler) *PasswordModule {
	return &PasswordModule{Handler: h}
}

func (m *PasswordModule) Register(rg *gin.RouterGroup) {
	linkLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/password/reset-password-link", linkLimiter, m.Handler.SendResetLink)
	rg.GET("/password/reset-password/:userId/:token", resetLimiter, m.Handler.ValidateLink)
	rg.POST("/password/reset-password/:userId/:token", resetLimiter, m.Handler.ResetPassword)
}
