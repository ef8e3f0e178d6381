package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogora/blogora/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	auth := r.Group("/", Authenticate(jwt))
	auth.GET("/me", func(c *gin.Context) {
		id := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": id.AccountID, "isAdmin": id.IsAdmin})
	})
	auth.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	auth.GET("/self/:id", RequireSelf("id"), func(c *gin.Context) { c.Status(http.StatusOK) })
	auth.GET("/selfadmin/:id", RequireSelfOrAdmin("id"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doReq(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	r := authRouter(helpers.NewJWTManager("secret"))

	w := doReq(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no token provided, access denied")
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret")
	r := authRouter(jwt)

	w := doReq(r, "/me", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token, access denied")

	// Signed with a different secret.
	foreign, err := helpers.NewJWTManager("other").Generate("u1", false)
	require.NoError(t, err)
	w = doReq(r, "/me", foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("secret")
	r := authRouter(jwt)

	token, err := jwt.Generate("u1", true)
	require.NoError(t, err)

	w := doReq(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.Contains(t, w.Body.String(), `"isAdmin":true`)
}

func TestGuards(t *testing.T) {
	jwt := helpers.NewJWTManager("secret")
	r := authRouter(jwt)

	adminTok, err := jwt.Generate("a1", true)
	require.NoError(t, err)
	userTok, err := jwt.Generate("u1", false)
	require.NoError(t, err)

	tests := []struct {
		path  string
		token string
		code  int
	}{
		{"/admin", adminTok, http.StatusOK},
		{"/admin", userTok, http.StatusForbidden},
		{"/self/u1", userTok, http.StatusOK},
		{"/self/u1", adminTok, http.StatusForbidden},
		{"/selfadmin/u1", userTok, http.StatusOK},
		{"/selfadmin/u1", adminTok, http.StatusOK},
		{"/selfadmin/other", userTok, http.StatusForbidden},
	}
	for _, tt := range tests {
		w := doReq(r, tt.path, tt.token)
		assert.Equalf(t, tt.code, w.Code, "path %s", tt.path)
	}
}

func TestIdentityFromWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	id := IdentityFrom(c)
	assert.Empty(t, id.AccountID)
	assert.False(t, id.IsAdmin)
}
