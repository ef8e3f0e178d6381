package router

import (
	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/internal/container"
	"github.com/blogora/blogora/internal/infrastructure/gcs"
	"github.com/blogora/blogora/internal/infrastructure/postgres"
	handlers "github.com/blogora/blogora/internal/interface/http"
	"github.com/blogora/blogora/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := postgres.NewUserRepository(pool)
	tokens := postgres.NewTokenRepository(pool)
	posts := postgres.NewPostRepository(pool)
	comments := postgres.NewCommentRepository(pool)
	categories := postgres.NewCategoryRepository(pool)

	blobs := gcs.NewBlobStore(container.GetGCS(), cfg.GCSBucket)

	authSvc := application.NewAuthService(users, tokens, container.GetMailSender(), container.GetJWT(), cfg.ClientDomain, logger)
	userSvc := application.NewUserService(users, posts, comments, blobs, logger)
	postSvc := application.NewPostService(posts, comments, blobs, container.GetES(), cfg.ESPostsIndex, logger)
	commentSvc := application.NewCommentService(comments, posts, users)
	categorySvc := application.NewCategoryService(categories)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewPasswordModule(handlers.NewPasswordHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc), container.GetJWT()))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc), container.GetJWT()))
}
