package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/service"
	"bakery-pos-api/pkg/apierror"
	"bakery-pos-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// InventoryHandler handles catalog HTTP requests.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

func productID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// List handles GET /api/v1/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.List(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, items)
}

// addProductRequest is the POST /inventory body.
type addProductRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Add handles POST /api/v1/inventory
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	item, err := h.inventoryService.AddProduct(r.Context(), req.Name, req.Quantity, req.Price)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, item)
}

// Update handles PATCH /api/v1/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, apierror.BadRequest("id must be an integer"))
		return
	}

	var update model.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	item, err := h.inventoryService.UpdateProduct(r.Context(), id, update)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, item)
}

// adjustRequest is the POST /inventory/{id}/adjust body.
type adjustRequest struct {
	Change int `json:"change"`
}

// Adjust handles POST /api/v1/inventory/{id}/adjust
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, apierror.BadRequest("id must be an integer"))
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	item, err := h.inventoryService.AdjustQuantity(r.Context(), id, req.Change)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, item)
}

// Delete handles DELETE /api/v1/inventory/{id}
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, apierror.BadRequest("id must be an integer"))
		return
	}

	if err := h.inventoryService.DeleteProduct(r.Context(), id); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.NoContent(w)
}

// History handles GET /api/v1/history/inventory
func (h *InventoryHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.inventoryService.History(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, entries)
}
