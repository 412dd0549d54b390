package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bakery-pos-api/internal/service"
	"bakery-pos-api/pkg/apierror"
	"bakery-pos-api/pkg/response"
)

// BackupHandler handles backup export and import.
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// Export handles GET /api/v1/backup/export. The envelope is served as a
// download with a dated filename.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	envelope, err := h.backupService.Export(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	// The filename date comes from the envelope's own timestamp so the two
	// can never disagree.
	stamp, err := time.Parse(time.RFC3339, envelope.Timestamp)
	if err != nil {
		stamp = time.Now()
	}
	filename := fmt.Sprintf("bakery-pos-backup-%s.json", stamp.UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(envelope)
}

// Import handles POST /api/v1/backup/import with the envelope as the body.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, apierror.BadRequest("failed to read request body"))
		return
	}
	defer r.Body.Close()

	if err := h.backupService.Import(r.Context(), body); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"imported": true})
}
