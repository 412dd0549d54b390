package handler

import (
	"net/http"

	"bakery-pos-api/internal/service"
	"bakery-pos-api/pkg/response"
)

// DayHandler handles trading-day lifecycle HTTP requests.
type DayHandler struct {
	dayService *service.DayService
}

// NewDayHandler creates a new day handler.
func NewDayHandler(dayService *service.DayService) *DayHandler {
	return &DayHandler{
		dayService: dayService,
	}
}

// Status handles GET /api/v1/day
func (h *DayHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.dayService.Status(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, status)
}

// Start handles POST /api/v1/day/start
func (h *DayHandler) Start(w http.ResponseWriter, r *http.Request) {
	status, err := h.dayService.StartDay(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, status)
}

// End handles POST /api/v1/day/end
func (h *DayHandler) End(w http.ResponseWriter, r *http.Request) {
	entry, err := h.dayService.EndDay(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, entry)
}
