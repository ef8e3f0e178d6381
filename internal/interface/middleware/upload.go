package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blogora/blogora/internal/application"
	"github.com/blogora/blogora/pkg/response"
)

const uploadKey = "image_upload"

// MaxImageSize caps uploaded images at 1 MiB.
const MaxImageSize = 1 << 20

// StageImage parses the optional "image" multipart field and stages it in
// the Gin context for the handler. A missing field is not an error here;
// handlers that require an image reject it themselves. The file handle is
// closed once the handler chain returns.
func StageImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("image")
		if err != nil {
			c.Next()
			return
		}
		if fh.Size > MaxImageSize {
			response.Abort(c, http.StatusBadRequest, "image too large", nil)
			return
		}
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			response.Abort(c, http.StatusBadRequest, "only image uploads are allowed", nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.Abort(c, http.StatusBadRequest, "could not read image", nil)
			return
		}
		defer func() { _ = f.Close() }()

		c.Set(uploadKey, &application.ImageUpload{
			File:        f,
			Filename:    fh.Filename,
			ContentType: contentType,
		})
		c.Next()
	}
}

// StagedImage returns the image staged by StageImage, or nil.
func StagedImage(c *gin.Context) *application.ImageUpload {
	if v, ok := c.Get(uploadKey); ok {
		if img, ok := v.(*application.ImageUpload); ok {
			return img
		}
	}
	return nil
}
