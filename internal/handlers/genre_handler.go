package handlers

import (
	"net/http"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genres repository.GenreRepository
}

func NewGenreHandler(genres repository.GenreRepository) *GenreHandler {
	return &GenreHandler{genres: genres}
}

func (h *GenreHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListGenres)
}

func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.genres.FindAll(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Error retrieving genres.")
		return
	}
	c.JSON(http.StatusOK, genres)
}
