package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/internal/telemetry/tracing"
	"github.com/2beens/treinoapp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type progressService interface {
	CheckAndResetWorkoutSession(ctx context.Context, userID, workoutID string) error
	GetExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int) ExerciseProgress
	SetExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int, p ExerciseProgress) error
	ClearExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int) error
	ToggleSeries(ctx context.Context, userID, workoutID string, exerciseIndex, seriesIndex int) (ExerciseProgress, error)
	CompleteAllSeries(ctx context.Context, userID, workoutID string, exerciseIndex, totalSeries int) (ExerciseProgress, error)
	GetSessionStats(ctx context.Context, userID, workoutID string) *SessionStats
	WasWorkoutStartedToday(ctx context.Context, userID, workoutID string) bool
	ResetCurrentWorkoutSession(ctx context.Context, userID, workoutID string) error
	StartWorkoutSession(ctx context.Context, userID, workoutID string) WorkoutSessionRecord
	CompleteWorkoutSession(ctx context.Context, record WorkoutSessionRecord) error
	GetWorkoutHistory(ctx context.Context, userID string, limit int) []WorkoutSessionRecord
	GetWorkoutStats(ctx context.Context, userID string) WorkoutStats
	AddWeight(ctx context.Context, userID, exerciseName string, weight float64) error
	GetWeights(ctx context.Context, userID, exerciseName string) []WeightEntry
	GetLastWeight(ctx context.Context, userID, exerciseName string) (float64, bool)
}

var _ progressService = (*Service)(nil)

type SessionStatsResponse struct {
	Stats        *SessionStats `json:"stats"`
	StartedToday bool          `json:"startedToday"`
}

type WeightsResponse struct {
	Weights    []WeightEntry `json:"weights"`
	LastWeight *float64      `json:"lastWeight"`
}

type AddWeightRequest struct {
	Weight float64 `json:"weight"`
}

// SetProgressRequest is a full ExerciseProgress. CurrentSeries may be omitted;
// when present it must match the size of CompletedSeries.
type SetProgressRequest struct {
	ExerciseProgress
	CurrentSeries *int `json:"currentSeries"`
}

type CompleteAllRequest struct {
	TotalSeries int `json:"totalSeries"`
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress/{user}/{workout}/{index}", h.HandleGetProgress).Methods("GET", "OPTIONS")
	r.HandleFunc("/progress/{user}/{workout}/{index}", h.HandleSetProgress).Methods("PUT", "OPTIONS")
	r.HandleFunc("/progress/{user}/{workout}/{index}", h.HandleClearProgress).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/progress/{user}/{workout}/{index}/series/{series}", h.HandleToggleSeries).Methods("POST", "OPTIONS")
	r.HandleFunc("/progress/{user}/{workout}/{index}/complete", h.HandleCompleteAll).Methods("POST", "OPTIONS")

	r.HandleFunc("/sessions/complete", h.HandleCompleteWorkout).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions/{user}/{workout}", h.HandleSessionStats).Methods("GET", "OPTIONS")
	r.HandleFunc("/sessions/{user}/{workout}/reset", h.HandleResetSession).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions/{user}/{workout}/start", h.HandleStartWorkout).Methods("POST", "OPTIONS")

	r.HandleFunc("/history/{user}", h.HandleHistory).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/{user}", h.HandleStats).Methods("GET", "OPTIONS")

	r.HandleFunc("/weights/{user}/{exercise}", h.HandleGetWeights).Methods("GET", "OPTIONS")
	r.HandleFunc("/weights/{user}/{exercise}", h.HandleAddWeight).Methods("POST", "OPTIONS")
}

func (h *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	vars := mux.Vars(r)
	index, err := exerciseIndexParam(vars)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := h.service.GetExerciseProgress(ctx, vars["user"], vars["workout"], index)
	pkg.WriteJSONResponse(w, http.StatusOK, p)
}

func (h *Handler) HandleSetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	index, err := exerciseIndexParam(vars)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := SetProgressRequest{ExerciseProgress: DefaultExerciseProgress()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set progress, unmarshal json: %s", err)
		http.Error(w, "invalid progress", http.StatusBadRequest)
		return
	}
	p := req.ExerciseProgress
	if req.CurrentSeries != nil && *req.CurrentSeries != p.CompletedSeries.Len() {
		http.Error(w, "currentSeries does not match completedSeries", http.StatusBadRequest)
		return
	}
	p.CurrentSeries = p.CompletedSeries.Len()

	// rollover must happen before the write, not on the next read
	if err := h.service.CheckAndResetWorkoutSession(ctx, vars["user"], vars["workout"]); err != nil {
		log.Errorf("set progress, session check %s/%s: %s", vars["user"], vars["workout"], err)
	}

	if err := h.service.SetExerciseProgress(ctx, vars["user"], vars["workout"], index, p); err != nil {
		log.Errorf("set progress %s/%s/%d: %s", vars["user"], vars["workout"], index, err)
		http.Error(w, "set progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, h.service.GetExerciseProgress(ctx, vars["user"], vars["workout"], index))
}

func (h *Handler) HandleClearProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.clear")
	defer span.End()

	vars := mux.Vars(r)
	index, err := exerciseIndexParam(vars)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.ClearExerciseProgress(ctx, vars["user"], vars["workout"], index); err != nil {
		log.Errorf("clear progress %s/%s/%d: %s", vars["user"], vars["workout"], index, err)
		http.Error(w, "clear progress failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleToggleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.series.toggle")
	defer span.End()

	vars := mux.Vars(r)
	index, err := exerciseIndexParam(vars)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	series, err := strconv.Atoi(vars["series"])
	if err != nil {
		http.Error(w, "invalid series index", http.StatusBadRequest)
		return
	}

	p, err := h.service.ToggleSeries(ctx, vars["user"], vars["workout"], index, series)
	if err != nil {
		if errors.Is(err, ErrInvalidSeries) {
			http.Error(w, "invalid series index", http.StatusBadRequest)
			return
		}
		log.Errorf("toggle series %s/%s/%d/%d: %s", vars["user"], vars["workout"], index, series, err)
		http.Error(w, "toggle series failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, p)
}

func (h *Handler) HandleCompleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.series.completeall")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	index, err := exerciseIndexParam(vars)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req CompleteAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("complete all series, unmarshal json: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	p, err := h.service.CompleteAllSeries(ctx, vars["user"], vars["workout"], index, req.TotalSeries)
	if err != nil {
		log.Errorf("complete all series %s/%s/%d: %s", vars["user"], vars["workout"], index, err)
		http.Error(w, "complete series failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, p)
}

func (h *Handler) HandleSessionStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.session.stats")
	defer span.End()

	vars := mux.Vars(r)
	stats := h.service.GetSessionStats(ctx, vars["user"], vars["workout"])
	if stats == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, SessionStatsResponse{
		Stats:        stats,
		StartedToday: h.service.WasWorkoutStartedToday(ctx, vars["user"], vars["workout"]),
	})
}

func (h *Handler) HandleResetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.session.reset")
	defer span.End()

	vars := mux.Vars(r)
	if err := h.service.ResetCurrentWorkoutSession(ctx, vars["user"], vars["workout"]); err != nil {
		log.Errorf("reset session %s/%s: %s", vars["user"], vars["workout"], err)
		http.Error(w, "reset session failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "reset")
}

func (h *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.workout.start")
	defer span.End()

	vars := mux.Vars(r)
	record := h.service.StartWorkoutSession(ctx, vars["user"], vars["workout"])
	pkg.WriteJSONResponse(w, http.StatusCreated, record)
}

func (h *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.workout.complete")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record WorkoutSessionRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("complete workout, unmarshal json: %s", err)
		http.Error(w, "invalid workout session record", http.StatusBadRequest)
		return
	}

	if err := h.service.CompleteWorkoutSession(ctx, record); err != nil {
		if errors.Is(err, ErrInvalidRecord) {
			http.Error(w, "invalid workout session record", http.StatusBadRequest)
			return
		}
		log.Errorf("complete workout %s: %s", record.ID, err)
		http.Error(w, "complete workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "completed")
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.history")
	defer span.End()

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		var err error
		limit, err = strconv.Atoi(limitParam)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	history := h.service.GetWorkoutHistory(ctx, mux.Vars(r)["user"], limit)
	pkg.WriteJSONResponse(w, http.StatusOK, history)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	pkg.WriteJSONResponse(w, http.StatusOK, h.service.GetWorkoutStats(ctx, mux.Vars(r)["user"]))
}

func (h *Handler) HandleGetWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weights.get")
	defer span.End()

	vars := mux.Vars(r)
	resp := WeightsResponse{
		Weights: h.service.GetWeights(ctx, vars["user"], vars["exercise"]),
	}
	if last, ok := h.service.GetLastWeight(ctx, vars["user"], vars["exercise"]); ok {
		resp.LastWeight = &last
	}
	pkg.WriteJSONResponse(w, http.StatusOK, resp)
}

func (h *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weights.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add weight, unmarshal json: %s", err)
		http.Error(w, "invalid weight", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	if err := h.service.AddWeight(ctx, vars["user"], vars["exercise"], req.Weight); err != nil {
		log.Errorf("add weight %s/%s: %s", vars["user"], vars["exercise"], err)
		http.Error(w, "add weight failed", http.StatusInternalServerError)
		return
	}

	resp := WeightsResponse{
		Weights: h.service.GetWeights(ctx, vars["user"], vars["exercise"]),
	}
	if last, ok := h.service.GetLastWeight(ctx, vars["user"], vars["exercise"]); ok {
		resp.LastWeight = &last
	}
	pkg.WriteJSONResponse(w, http.StatusOK, resp)
}

func exerciseIndexParam(vars map[string]string) (int, error) {
	index, err := strconv.Atoi(vars["index"])
	if err != nil || index < 0 {
		return 0, errors.New("invalid exercise index")
	}
	return index, nil
}
