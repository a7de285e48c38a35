// README: Options handler; serves the trip form's choices, ranges and defaults.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinerary/internal/modules/planner"
)

type OptionsHandler struct {
	catalogue planner.Catalogue
}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{catalogue: planner.Options()}
}

func (h *OptionsHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.catalogue)
}
