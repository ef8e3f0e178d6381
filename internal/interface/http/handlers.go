package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/pkg/response"
)

// writeError maps service sentinels onto status codes. notFound customizes
// the 404 message per resource; everything unmapped becomes an opaque 500.
func writeError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, notFound, nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "access denied, you are not allowed", nil)
	case errors.Is(err, application.ErrDuplicateEmail),
		errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrAccountNotVerified),
		errors.Is(err, application.ErrInvalidLink),
		errors.Is(err, application.ErrUnknownEmail),
		errors.Is(err, application.ErrNoImage):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
