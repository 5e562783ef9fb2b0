package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/services"
)

// SearchHandler handles keyword search across both collections
type SearchHandler struct {
	directory *services.DirectoryService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(directory *services.DirectoryService) *SearchHandler {
	return &SearchHandler{directory: directory}
}

// HandleSearch matches ?q= as a substring over names, descriptions and
// categories/types, tagging each hit with its kind
func (sh *SearchHandler) HandleSearch(c *gin.Context) {
	results, err := sh.directory.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
