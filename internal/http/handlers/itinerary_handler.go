// README: Itinerary handler; turns a submitted trip form into a day-by-day plan.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"itinerary/internal/modules/planner"
)

const markdownContentType = "text/markdown; charset=utf-8"

type ItineraryHandler struct {
	planner *planner.Service
}

func NewItineraryHandler(svc *planner.Service) *ItineraryHandler {
	return &ItineraryHandler{planner: svc}
}

type dayResponse struct {
	DayNumber  int      `json:"day_number"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

type itineraryResponse struct {
	Days []dayResponse `json:"days"`
}

type planResponse struct {
	Request   planner.TripRequest `json:"request"`
	Itinerary itineraryResponse   `json:"itinerary"`
}

// Create handles POST /api/itineraries. Fields missing from the body keep
// the form defaults; ?format=markdown returns the rendered plan as text.
// A body cut off by middleware.BodyLimit is answered with 413.
func (h *ItineraryHandler) Create(c *gin.Context) {
	req := planner.DefaultRequest()
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		if errors.Is(err, planner.ErrInvalidRequest) {
			writePlannerError(c, err)
			return
		}
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	plan, err := h.planner.Plan(req)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	if c.Query("format") == "markdown" {
		c.Data(http.StatusOK, markdownContentType, []byte(plan.Itinerary.Markdown()))
		return
	}
	writeJSON(c, http.StatusOK, toPlanResponse(plan))
}

func toPlanResponse(plan planner.Plan) planResponse {
	days := make([]dayResponse, len(plan.Itinerary.Days))
	for i, d := range plan.Itinerary.Days {
		days[i] = dayResponse{DayNumber: d.DayNumber, Title: d.Title(), Activities: d.Activities}
	}
	return planResponse{Request: plan.Request, Itinerary: itineraryResponse{Days: days}}
}
