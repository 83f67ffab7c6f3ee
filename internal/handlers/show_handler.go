package handlers

import (
	"net/http"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/pkg/rabbitmq"
	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	shows  repository.ShowRepository
	events EventPublisher
}

func NewShowHandler(shows repository.ShowRepository, events EventPublisher) *ShowHandler {
	return &ShowHandler{shows: shows, events: events}
}

func (h *ShowHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListShows)
	g.POST("/create", h.CreateShow)
}

func (h *ShowHandler) ListShows(c *gin.Context) {
	shows, err := h.shows.FindAll(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Error retrieving shows.")
		return
	}
	c.JSON(http.StatusOK, shows)
}

func (h *ShowHandler) CreateShow(c *gin.Context) {
	artistID, err := helpers.StringToUint(c.PostForm("artist_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}
	venueID, err := helpers.StringToUint(c.PostForm("venue_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}
	startTime, err := helpers.ParseStartTime(c.PostForm("start_time"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
		return
	}

	show, err := h.shows.Create(c.Request.Context(), venueID, artistID, startTime)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "An error occurred. Show could not be listed.")
		return
	}

	publish(h.events, rabbitmq.ShowCreated, dto.ShowCreatedEvent{
		ID:        show.ID,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed!",
		"show_id": show.ID,
	})
}
