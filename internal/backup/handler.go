package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/internal/catalog"
	"github.com/2beens/treinoapp/internal/progress"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
	"github.com/2beens/treinoapp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=backup_test

const maxSnapshotBytes = 20 << 20

type backupService interface {
	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, snapshot *Snapshot) (ImportResult, error)
	ClearAll(ctx context.Context) error
}

type summaryService interface {
	WeeklySummary(ctx context.Context, userID string) (*WeeklySummary, error)
}

var (
	_ backupService  = (*Service)(nil)
	_ summaryService = (*SummaryService)(nil)
)

type Handler struct {
	backup  backupService
	summary summaryService
}

func NewHandler(backup backupService, summary summaryService) *Handler {
	return &Handler{
		backup:  backup,
		summary: summary,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/summary/{user}/weekly", h.HandleWeeklySummary).Methods("GET", "OPTIONS")

	r.HandleFunc("/admin/backup", h.HandleExport).Methods("GET", "OPTIONS")
	r.HandleFunc("/admin/backup", h.HandleImport).Methods("POST", "OPTIONS")
	r.HandleFunc("/admin/data", h.HandleClear).Methods("DELETE", "OPTIONS")
}

func (h *Handler) HandleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.weekly_summary")
	defer span.End()

	user := mux.Vars(r)["user"]
	summary, err := h.summary.WeeklySummary(ctx, user)
	if err != nil {
		if errors.Is(err, catalog.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("weekly summary %s: %s", user, err)
		http.Error(w, "weekly summary failed", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("semana_%s_%s.json", user, progress.DayOf(summary.Metadata.ExportDate))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	pkg.WriteJSONResponse(w, http.StatusOK, summary)
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.export")
	defer span.End()

	snapshot, err := h.backup.Export(ctx)
	if err != nil {
		log.Errorf("backup export: %s", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, snapshot)
}

func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.import")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var snapshot Snapshot
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSnapshotBytes)).Decode(&snapshot); err != nil {
		log.Errorf("backup import, unmarshal json: %s", err)
		http.Error(w, "invalid snapshot", http.StatusBadRequest)
		return
	}

	result, err := h.backup.Import(ctx, &snapshot)
	if err != nil {
		if errors.Is(err, ErrInvalidSnapshot) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("backup import: %s", err)
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.clear")
	defer span.End()

	if err := h.backup.ClearAll(ctx); err != nil {
		log.Errorf("clear all data: %s", err)
		http.Error(w, "clear failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "cleared")
}
