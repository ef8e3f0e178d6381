package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/pkg/helpers"
	"github.com/blogora/blogora/pkg/response"
)

const identityKey = "identity"

// Authenticate validates the bearer token and sets the caller's identity in
// the Gin context. The token itself is the whole credential; no server-side
// session is consulted.
func Authenticate(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Abort(c, http.StatusUnauthorized, "no token provided, access denied", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid token, access denied", nil)
			return
		}
		c.Set(identityKey, application.Identity{AccountID: claims.UserID, IsAdmin: claims.IsAdmin})
		c.Set("userID", claims.UserID) // rate-limit keys read this
		c.Next()
	}
}

// IdentityFrom returns the identity set by Authenticate.
func IdentityFrom(c *gin.Context) application.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(application.Identity); ok {
			return id
		}
	}
	return application.Identity{}
}

// RequireAdmin gates a route on the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !application.IsAdmin(IdentityFrom(c)) {
			response.Abort(c, http.StatusForbidden, "only admin is allowed", nil)
			return
		}
		c.Next()
	}
}

// RequireSelf gates a route on the caller owning the account named by the
// given path parameter.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !application.IsSelf(IdentityFrom(c), c.Param(param)) {
			response.Abort(c, http.StatusForbidden, "you can only access your own account", nil)
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin gates a route on ownership of the account named by the
// given path parameter, or the admin role.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !application.IsSelfOrAdmin(IdentityFrom(c), c.Param(param)) {
			response.Abort(c, http.StatusForbidden, "you can only access your own account", nil)
			return
		}
		c.Next()
	}
}
