package characters

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"characters_back/catalog"
)

const internalMessage = "An unexpected error occurred. Please try again later."

// errorEnvelope is the body of every failed response.
type errorEnvelope struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// writeError is the one place where a catalog error becomes an HTTP response.
func (m *Module) writeError(c *gin.Context, err error) {
	status, code, message := classify(err)

	if status == http.StatusInternalServerError {
		m.logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", c.Writer.Header().Get("X-Request-ID")),
			slog.Any("error", err),
		)
	}

	c.AbortWithStatusJSON(status, errorEnvelope{
		Error:     code,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
	})
}

func classify(err error) (int, string, string) {
	var e *catalog.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, catalog.CodeInternal, internalMessage
	}

	message := e.Message
	if message == "" {
		message = e.Code
	}

	switch e.Kind {
	case catalog.KindNotFound:
		code := "Charakter not found"
		if e.Resource == catalog.ResourceFavorite {
			code = "Favorite not found"
		}
		return http.StatusNotFound, code, message
	case catalog.KindInvalidData:
		return http.StatusBadRequest, e.Code, message
	case catalog.KindValidation:
		return http.StatusBadRequest, catalog.CodeValidation, message
	default:
		return http.StatusInternalServerError, catalog.CodeInternal, internalMessage
	}
}
