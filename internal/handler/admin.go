package handler

import (
	"net/http"
	"runtime"
	"time"

	"bakery-pos-api/internal/repository"
	"bakery-pos-api/internal/service"
	"bakery-pos-api/internal/storage"
	"bakery-pos-api/pkg/response"
)

// AdminHandler handles diagnostics and destructive maintenance endpoints.
type AdminHandler struct {
	maintenanceService *service.MaintenanceService
	store              repository.RecordStore
	selection          *storage.Selection
	fallback           *storage.Fallback
	startTime          time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	maintenanceService *service.MaintenanceService,
	store repository.RecordStore,
	selection *storage.Selection,
	fallback *storage.Fallback,
) *AdminHandler {
	return &AdminHandler{
		maintenanceService: maintenanceService,
		store:              store,
		selection:          selection,
		fallback:           fallback,
		startTime:          time.Now(),
	}
}

// GetStats handles GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]interface{})

	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["uptime_human"] = time.Since(h.startTime).Round(time.Second).String()
	stats["server_time"] = time.Now().Format(time.RFC3339)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":   float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":     float64(memStats.Sys) / 1024 / 1024,
		"num_gc":     memStats.NumGC,
		"goroutines": runtime.NumGoroutine(),
	}

	stats["storage"] = map[string]interface{}{
		"tier":         h.selection.Tier,
		"probed":       h.selection.Probed,
		"degradations": h.fallback.Degradations(),
	}

	stats["store"] = map[string]interface{}{
		"recovered_at_startup": h.store.Recovered(),
	}

	response.OK(w, stats)
}

// ResetAll handles POST /api/v1/admin/reset
func (h *AdminHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenanceService.ResetAll(r.Context()); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"reset": "all"})
}

// ResetInventory handles POST /api/v1/admin/reset-inventory
func (h *AdminHandler) ResetInventory(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenanceService.ResetInventory(r.Context()); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"reset": "inventory"})
}
