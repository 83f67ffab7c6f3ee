package handlers

import (
	"fmt"
	"net/http"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/pkg/rabbitmq"
	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artists repository.ArtistRepository
	events  EventPublisher
}

func NewArtistHandler(artists repository.ArtistRepository, events EventPublisher) *ArtistHandler {
	return &ArtistHandler{artists: artists, events: events}
}

func (h *ArtistHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListArtists)
	g.POST("/search", h.SearchArtists)
	g.POST("/create", h.CreateArtist)
	g.GET("/:id", h.GetArtist)
	g.GET("/:id/edit", h.EditArtist)
	g.POST("/:id/edit", h.UpdateArtist)
	g.DELETE("/:id", h.DeleteArtist)
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.artists.FindAll(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Error retrieving artists.")
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	res, err := h.artists.Search(c.Request.Context(), c.PostForm("search_term"))
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Error searching artists.")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	detail, err := h.artists.Detail(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Artist not found.")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ArtistHandler) EditArtist(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	artist, err := h.artists.FindByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Artist not found.")
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	fields, genres := helpers.ParseArtistForm(c)
	if fields.Name == "" || fields.City == "" || fields.State == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	artist, err := h.artists.Create(c.Request.Context(), fields, genres)
	if err != nil {
		helpers.RespondWithRepoError(c, err, fmt.Sprintf("An error occurred. Artist %s could not be listed.", fields.Name))
		return
	}

	publish(h.events, rabbitmq.ArtistCreated, dto.ArtistCreatedEvent{
		ID:     artist.ID,
		Name:   artist.Name,
		City:   artist.City,
		State:  artist.State,
		Genres: models.GenreNames(artist.Genres),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		"artist_id": artist.ID,
	})
}

func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	fields, genres := helpers.ParseArtistForm(c)
	if fields.Name == "" || fields.City == "" || fields.State == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	artist, err := h.artists.Update(c.Request.Context(), id, fields, genres)
	if err != nil {
		helpers.RespondWithRepoError(c, err, fmt.Sprintf("An error occurred. Artist %s could not be updated.", fields.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
		"artist":  artist,
	})
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	res, err := h.artists.Delete(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Artist not found.")
		return
	}
	if !res.Success {
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	publish(h.events, rabbitmq.ArtistDeleted, dto.DeletedEvent{ID: id})
	c.JSON(http.StatusOK, res)
}
