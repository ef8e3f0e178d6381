package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/container"
	handlers "github.com/blogora/blogora/internal/interface/http"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/helpers"
)

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Authenticate(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("/categories", middleware.RequireAdmin(), m.Handler.Create)
		auth.DELETE("/categories/:id", middleware.RequireAdmin(), m.Handler.Delete)
	}
}
