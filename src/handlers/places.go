package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/middleware"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/services"
)

// PlaceHandler handles place reads and admin mutations
type PlaceHandler struct {
	directory *services.DirectoryService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(directory *services.DirectoryService) *PlaceHandler {
	return &PlaceHandler{directory: directory}
}

// HandleList returns all places ordered by name. Administrators get
// every stored field; everyone else gets the public projection.
func (ph *PlaceHandler) HandleList(c *gin.Context) {
	places, err := ph.directory.ListPlaces(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if middleware.IsAdmin(c) {
		c.JSON(http.StatusOK, places)
		return
	}

	public := make([]models.PublicPlace, 0, len(places))
	for i := range places {
		public = append(public, places[i].Public())
	}
	c.JSON(http.StatusOK, public)
}

// HandleGet returns a single place with every stored field. The detail
// endpoint is not projected: the public map's popups read hours and
// price from here.
func (ph *PlaceHandler) HandleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	place, err := ph.directory.GetPlace(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// HandleCreate inserts a new place after validating the payload
func (ph *PlaceHandler) HandleCreate(c *gin.Context) {
	var input services.PlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	place, err := ph.directory.CreatePlace(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

// HandleUpdate replaces all mutable fields of a place
func (ph *PlaceHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.PlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	place, err := ph.directory.UpdatePlace(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, place.Public())
}

// HandleDelete removes a place
func (ph *PlaceHandler) HandleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ph.directory.DeletePlace(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
