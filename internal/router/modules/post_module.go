package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/container"
	handlers "github.com/blogora/blogora/internal/interface/http"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/helpers"
)

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/posts", listLimiter, m.Handler.List)
	rg.GET("/posts/count", listLimiter, m.Handler.Count)
	rg.GET("/posts/:id", listLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Authenticate(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("/posts", middleware.StageImage(), m.Handler.Create)
		auth.GET("/posts/search", m.Handler.Search)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.PUT("/posts/update-image/:id", middleware.StageImage(), m.Handler.UpdateImage)
		auth.PUT("/posts/like/:id", m.Handler.ToggleLike)
	}
}
