package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	var verr *catalog.ValidationError
	var merr *ledger.ModerationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &merr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRecipeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler turns errors attached with c.Error into JSON responses and
// recovers panics as 500s.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic serving request", "panic", r, "path", c.Request.URL.Path, "request_id", RequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		resp := ErrorResponse{Error: err.Error()}

		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			resp = ErrorResponse{Error: verr.Message, Field: verr.Field}
		}
		if status == http.StatusInternalServerError {
			log.Error("request failed", "error", err, "path", c.Request.URL.Path, "request_id", RequestID(c))
			resp.Error = "Internal Server Error"
		}
		c.JSON(status, resp)
	}
}
