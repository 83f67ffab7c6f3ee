package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
)

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// StatusForRepoError maps a repository error kind to an HTTP status.
func StatusForRepoError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithRepoError logs err under the request id and writes the error
// envelope with the status matching its kind.
func RespondWithRepoError(c *gin.Context, err error, customMessage string) {
	status := StatusForRepoError(err)
	log.Printf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	RespondWithError(c, status, customMessage)
}
