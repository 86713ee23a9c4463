package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/internal/telemetry/tracing"
	"github.com/2beens/treinoapp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=settings_test

type settingsService interface {
	GetTimerSettings(ctx context.Context) TimerSettings
	SetTimerSettings(ctx context.Context, patch TimerSettingsPatch) (TimerSettings, error)
	GetAppSettings(ctx context.Context) AppSettings
	SetAppSettings(ctx context.Context, patch AppSettingsPatch) (AppSettings, error)
	GetCurrent(ctx context.Context) Current
	SetCurrent(ctx context.Context, patch CurrentPatch) (Current, error)
}

type userLister interface {
	Users() []string
}

var _ settingsService = (*Service)(nil)

type Handler struct {
	service settingsService
	users   userLister
}

// NewHandler creates the settings handler. When users is set, the current user
// can only be one of them.
func NewHandler(service settingsService, users userLister) *Handler {
	return &Handler{
		service: service,
		users:   users,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/settings/timer", h.HandleGetTimer).Methods("GET", "OPTIONS")
	r.HandleFunc("/settings/timer", h.HandleSetTimer).Methods("PUT", "OPTIONS")
	r.HandleFunc("/settings/app", h.HandleGetApp).Methods("GET", "OPTIONS")
	r.HandleFunc("/settings/app", h.HandleSetApp).Methods("PUT", "OPTIONS")
	r.HandleFunc("/settings/current", h.HandleGetCurrent).Methods("GET", "OPTIONS")
	r.HandleFunc("/settings/current", h.HandleSetCurrent).Methods("PUT", "OPTIONS")
}

func (h *Handler) HandleGetTimer(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, h.service.GetTimerSettings(r.Context()))
}

func (h *Handler) HandleSetTimer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.timer.set")
	defer span.End()

	var patch TimerSettingsPatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}

	settings, err := h.service.SetTimerSettings(ctx, patch)
	if err != nil {
		writeSettingsError(w, "set timer settings", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, settings)
}

func (h *Handler) HandleGetApp(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, h.service.GetAppSettings(r.Context()))
}

func (h *Handler) HandleSetApp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.app.set")
	defer span.End()

	var patch AppSettingsPatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}

	settings, err := h.service.SetAppSettings(ctx, patch)
	if err != nil {
		writeSettingsError(w, "set app settings", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, settings)
}

func (h *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, h.service.GetCurrent(r.Context()))
}

func (h *Handler) HandleSetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.current.set")
	defer span.End()

	var patch CurrentPatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}

	if h.users != nil && patch.User != nil && *patch.User != "" && !slices.Contains(h.users.Users(), *patch.User) {
		http.Error(w, "unknown user", http.StatusBadRequest)
		return
	}

	current, err := h.service.SetCurrent(ctx, patch)
	if err != nil {
		writeSettingsError(w, "set current", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, current)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Errorf("settings, unmarshal json: %s", err)
		http.Error(w, "invalid settings", http.StatusBadRequest)
		return false
	}
	return true
}

func writeSettingsError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrInvalidSettings) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("settings handler, %s: %s", op, err)
	http.Error(w, "failed to save settings", http.StatusInternalServerError)
}
