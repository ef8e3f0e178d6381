package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/container"
	handlers "github.com/blogora/blogora/internal/interface/http"
	"github.com/blogora/blogora/internal/interface/middleware"
	"github.com/blogora/blogora/pkg/helpers"
)

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/profile/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Authenticate(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/users/profile", middleware.RequireAdmin(), m.Handler.List)
		auth.GET("/users/count", middleware.RequireAdmin(), m.Handler.Count)
		auth.PUT("/users/profile/:id", middleware.RequireSelf("id"), m.Handler.Update)
		auth.DELETE("/users/profile/:id", middleware.RequireSelfOrAdmin("id"), m.Handler.Delete)
		auth.POST("/users/profile/profile-photo-upload", middleware.StageImage(), m.Handler.UploadProfilePhoto)
	}
}
