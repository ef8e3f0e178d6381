package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

type registerPayload struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	var p registerPayload
	return c.ShouldBindJSON(&p)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindJSON(t, `{"email":"not-an-email","password":"Sup3rSecret!"}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["username"])
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestStrongPasswordAlias(t *testing.T) {
	err := bindJSON(t, `{"username":"alice","email":"alice@example.com","password":"weak"}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details["password"], "8 characters")

	err = bindJSON(t, `{"username":"alice","email":"alice@example.com","password":"Sup3rSecret!"}`)
	assert.NoError(t, err)
}

func TestToDetailsMalformedJSON(t *testing.T) {
	err := bindJSON(t, `{"username":`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.NotEmpty(t, details["payload"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
