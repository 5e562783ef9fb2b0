package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/services"
)

// ArtisanHandler handles artisan catalog reads
type ArtisanHandler struct {
	directory *services.DirectoryService
}

// NewArtisanHandler creates a new artisan handler
func NewArtisanHandler(directory *services.DirectoryService) *ArtisanHandler {
	return &ArtisanHandler{directory: directory}
}

// HandleList returns all artisans ordered by name
func (ah *ArtisanHandler) HandleList(c *gin.Context) {
	artisans, err := ah.directory.ListArtisans(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artisans)
}

// HandleGet returns a single artisan
func (ah *ArtisanHandler) HandleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	artisan, err := ah.directory.GetArtisan(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artisan)
}
