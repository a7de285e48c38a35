// README: Backdrop handler; random page background, independent of planning.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinerary/internal/modules/backdrop"
)

type BackdropHandler struct {
	backdrop *backdrop.Service
}

func NewBackdropHandler(svc *backdrop.Service) *BackdropHandler {
	return &BackdropHandler{backdrop: svc}
}

func (h *BackdropHandler) Random(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"image_url": h.backdrop.Pick()})
}
