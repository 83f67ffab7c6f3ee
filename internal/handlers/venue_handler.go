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

type VenueHandler struct {
	venues repository.VenueRepository
	events EventPublisher
}

func NewVenueHandler(venues repository.VenueRepository, events EventPublisher) *VenueHandler {
	return &VenueHandler{venues: venues, events: events}
}

func (h *VenueHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListVenues)
	g.POST("/search", h.SearchVenues)
	g.POST("/create", h.CreateVenue)
	g.GET("/:id", h.GetVenue)
	g.GET("/:id/edit", h.EditVenue)
	g.POST("/:id/edit", h.UpdateVenue)
	g.DELETE("/:id", h.DeleteVenue)
}

func (h *VenueHandler) ListVenues(c *gin.Context) {
	areas, err := h.venues.ListGroupedByArea(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Error retrieving venues.")
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *VenueHandler) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")

	res, err := h.venues.Search(c.Request.Context(), term)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Error searching venues.")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	detail, err := h.venues.Detail(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Venue not found.")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// EditVenue returns the stored record used to prefill the edit form.
func (h *VenueHandler) EditVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	venue, err := h.venues.FindByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Venue not found.")
		return
	}
	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	fields, genres := helpers.ParseVenueForm(c)
	if fields.Name == "" || fields.City == "" || fields.State == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	venue, err := h.venues.Create(c.Request.Context(), fields, genres)
	if err != nil {
		helpers.RespondWithRepoError(c, err, fmt.Sprintf("An error occurred. Venue %s could not be listed.", fields.Name))
		return
	}

	publish(h.events, rabbitmq.VenueCreated, dto.VenueCreatedEvent{
		ID:     venue.ID,
		Name:   venue.Name,
		City:   venue.City,
		State:  venue.State,
		Genres: models.GenreNames(venue.Genres),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		"venue_id": venue.ID,
	})
}

func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	fields, genres := helpers.ParseVenueForm(c)
	if fields.Name == "" || fields.City == "" || fields.State == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	venue, err := h.venues.Update(c.Request.Context(), id, fields, genres)
	if err != nil {
		helpers.RespondWithRepoError(c, err, fmt.Sprintf("An error occurred. Venue %s could not be updated.", fields.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
		"venue":   venue,
	})
}

func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	res, err := h.venues.Delete(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Venue not found.")
		return
	}
	if !res.Success {
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	publish(h.events, rabbitmq.VenueDeleted, dto.DeletedEvent{ID: id})
	c.JSON(http.StatusOK, res)
}
