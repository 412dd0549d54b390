package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakery-pos-api/internal/handler"
	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
	"bakery-pos-api/internal/service"
	"bakery-pos-api/internal/storage"

	"github.com/stretchr/testify/require"
)

// newTestApp wires a full application over an in-memory backend, the same
// way cmd/api does minus the listener.
func newTestApp(t *testing.T) http.Handler {
	t.Helper()

	backend := storage.NewMemoryBackend()
	fb := storage.NewFallback(backend)
	store, err := repository.New(fb)
	require.NoError(t, err)

	selection := &storage.Selection{
		Backend: backend,
		Tier:    "memory",
		Probed:  []storage.ProbeResult{{Tier: "memory", OK: true}},
	}

	inventoryService := service.NewInventoryService(store)
	salesService := service.NewSalesService(store)
	dayService := service.NewDayService(store)
	reportService := service.NewReportService(store)
	backupService := service.NewBackupService(store)
	maintenanceService := service.NewMaintenanceService(store)

	return New(Config{
		Handler:          handler.New("test", selection.Tier),
		InventoryHandler: handler.NewInventoryHandler(inventoryService),
		SalesHandler:     handler.NewSalesHandler(salesService, reportService),
		DayHandler:       handler.NewDayHandler(dayService),
		BackupHandler:    handler.NewBackupHandler(backupService),
		AdminHandler:     handler.NewAdminHandler(maintenanceService, store, selection, fb),
	})
}

func do(t *testing.T, app http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

// envelope is the standard success wrapper with data left raw for the
// caller to decode.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

func TestRouter_HealthAndStatus(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_CheckoutFlow(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodPost, "/api/v1/day/start", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/v1/inventory",
		`{"name":"Bread","quantity":10,"price":7.00}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var item model.InventoryItem
	decodeData(t, rec, &item)
	require.Equal(t, 1, item.ID)

	body := fmt.Sprintf(`{"items":[{"id":%d,"quantity":2}],"paymentMethod":"cash","paymentAmount":20}`, item.ID)
	rec = do(t, app, http.MethodPost, "/api/v1/sales/checkout", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result service.CheckoutResult
	decodeData(t, rec, &result)
	require.InDelta(t, 15.82, result.Sale.Total, 1e-9)
	require.InDelta(t, 4.18, result.Change, 1e-9)

	// Stock decremented.
	rec = do(t, app, http.MethodGet, "/api/v1/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.InventoryItem
	decodeData(t, rec, &items)
	require.Len(t, items, 1)
	require.Equal(t, 8, items[0].Quantity)

	// Deleting the product responds 204 with no body.
	rec = do(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/inventory/%d", item.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = do(t, app, http.MethodGet, "/api/v1/sales/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary service.DaySummary
	decodeData(t, rec, &summary)
	require.Equal(t, 1, summary.SaleCount)
	require.InDelta(t, 15.82, summary.TotalSales, 1e-9)
}

func TestRouter_DayLifecycle(t *testing.T) {
	app := newTestApp(t)

	var status model.DayStatus
	rec := do(t, app, http.MethodGet, "/api/v1/day", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &status)
	require.False(t, status.DayStarted)

	rec = do(t, app, http.MethodPost, "/api/v1/day/start", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &status)
	require.True(t, status.DayStarted)
	require.NotNil(t, status.DayStartTime)

	rec = do(t, app, http.MethodPost, "/api/v1/day/end", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var history []model.SalesHistoryEntry
	rec = do(t, app, http.MethodGet, "/api/v1/history/sales", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &history)
	require.Len(t, history, 1)
}

func TestRouter_ErrorStatusCodes(t *testing.T) {
	app := newTestApp(t)

	// Day closed: mutations conflict.
	rec := do(t, app, http.MethodPost, "/api/v1/inventory",
		`{"name":"Bread","quantity":10,"price":7.00}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/v1/sales/checkout",
		`{"items":[{"id":1,"quantity":1}],"paymentMethod":"cash","paymentAmount":20}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/v1/day/end", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	// Open the day, then hit the remaining error paths.
	rec = do(t, app, http.MethodPost, "/api/v1/day/start", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodPatch, "/api/v1/inventory/999", `{"name":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodPatch, "/api/v1/inventory/abc", `{"name":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/v1/sales/checkout",
		`{"items":[],"paymentMethod":"cash","paymentAmount":20}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/v1/history/sales/0/summary", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/v1/backup/import", `{"nope":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestRouter_BackupExportImport(t *testing.T) {
	app := newTestApp(t)

	do(t, app, http.MethodPost, "/api/v1/day/start", "")
	rec := do(t, app, http.MethodPost, "/api/v1/inventory",
		`{"name":"Bread","quantity":10,"price":7.00}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/v1/backup/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	exported := rec.Body.String()

	// The download filename is dated from the envelope's own timestamp.
	var stamped struct {
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(exported), &stamped))
	require.Contains(t, rec.Header().Get("Content-Disposition"), stamped.Timestamp[:10])

	// Restore the snapshot into a fresh application.
	other := newTestApp(t)
	rec = do(t, other, http.MethodPost, "/api/v1/backup/import", exported)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, other, http.MethodGet, "/api/v1/inventory", "")
	var items []model.InventoryItem
	decodeData(t, rec, &items)
	require.Len(t, items, 1)
	require.Equal(t, "Bread", items[0].Name)
}

func TestRouter_AdminStatsAndReset(t *testing.T) {
	app := newTestApp(t)

	do(t, app, http.MethodPost, "/api/v1/day/start", "")
	rec := do(t, app, http.MethodPost, "/api/v1/inventory",
		`{"name":"Bread","quantity":10,"price":7.00}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/v1/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]interface{}
	decodeData(t, rec, &stats)
	require.Contains(t, stats, "storage")

	rec = do(t, app, http.MethodPost, "/api/v1/admin/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/v1/inventory", "")
	var items []model.InventoryItem
	decodeData(t, rec, &items)
	require.Empty(t, items)
}

func TestRouter_UnknownRoute(t *testing.T) {
	app := newTestApp(t)
	rec := do(t, app, http.MethodGet, "/api/v1/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
