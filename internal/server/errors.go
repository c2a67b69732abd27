package server

import (
	"errors"
	"net/http"

	bannerdomain "github.com/adboardhq/adboard/internal/banner/domain"
	customerdomain "github.com/adboardhq/adboard/internal/customer/domain"
	"github.com/adboardhq/adboard/internal/upload"
	"github.com/gin-gonic/gin"
)

// ErrorHandlingMiddleware is the catch-all for failures handlers did not
// translate themselves: anything left on the context becomes a generic 500.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Something went wrong",
		})
	}
}

// AbortWithError records the error for the middleware and logging layers and
// stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func classifyErrorForLog(err error) (string, string) {
	switch {
	case errors.Is(err, customerdomain.ErrInvalidData):
		return "validation_error", "invalid_data"
	case errors.Is(err, bannerdomain.ErrImageRequired):
		return "validation_error", "image_required"
	case errors.Is(err, upload.ErrUnsupportedType):
		return "validation_error", "unsupported_image_type"
	case errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, bannerdomain.ErrNotFound):
		return "not_found", "not_found"
	default:
		return "internal_error", "internal_error"
	}
}
