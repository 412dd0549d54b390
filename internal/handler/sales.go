package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bakery-pos-api/internal/service"
	"bakery-pos-api/pkg/apierror"
	"bakery-pos-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// SalesHandler handles checkout and reporting HTTP requests.
type SalesHandler struct {
	salesService  *service.SalesService
	reportService *service.ReportService
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *service.SalesService, reportService *service.ReportService) *SalesHandler {
	return &SalesHandler{
		salesService:  salesService,
		reportService: reportService,
	}
}

// Current handles GET /api/v1/sales
func (h *SalesHandler) Current(w http.ResponseWriter, r *http.Request) {
	record, err := h.salesService.Current(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, record)
}

// Checkout handles POST /api/v1/sales/checkout
func (h *SalesHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	result, err := h.salesService.Checkout(r.Context(), req)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, result)
}

// Summary handles GET /api/v1/sales/summary
func (h *SalesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.DailySummary(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, summary)
}

// History handles GET /api/v1/history/sales
func (h *SalesHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.salesService.History(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, entries)
}

// HistorySummary handles GET /api/v1/history/sales/{index}/summary
func (h *SalesHandler) HistorySummary(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.Error(w, apierror.BadRequest("index must be an integer"))
		return
	}

	summary, err := h.reportService.HistorySummary(r.Context(), index)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, summary)
}
