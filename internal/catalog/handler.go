package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/internal/progress"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
	"github.com/2beens/treinoapp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type progressTracker interface {
	CheckAndResetWorkoutSession(ctx context.Context, userID, workoutID string) error
	GetExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int) progress.ExerciseProgress
	GetLastWeight(ctx context.Context, userID, exerciseName string) (float64, bool)
	GetSessionStats(ctx context.Context, userID, workoutID string) *progress.SessionStats
	NextUncompletedExercise(ctx context.Context, userID, workoutID string, after int, seriesCounts []int) int
}

type PlanResponse struct {
	User       string             `json:"user"`
	Cronograma *Schedule          `json:"cronograma"`
	WorkoutIDs []string           `json:"workoutIds"`
	Treinos    map[string]Workout `json:"treinos"`
}

type ExerciseView struct {
	Index       int                       `json:"index"`
	Exercise    Exercise                  `json:"exercise"`
	Kind        string                    `json:"kind"`
	SeriesCount int                       `json:"seriesCount"`
	TimeSeconds int                       `json:"timeSeconds,omitempty"`
	TrackWeight bool                      `json:"trackWeight"`
	LastWeight  *float64                  `json:"lastWeight"`
	Progress    progress.ExerciseProgress `json:"progress"`
	Completed   bool                      `json:"completed"`
}

type WorkoutView struct {
	User         string                 `json:"user"`
	WorkoutID    string                 `json:"workoutId"`
	Foco         string                 `json:"foco"`
	Exercises    []ExerciseView         `json:"exercises"`
	HasProgress  bool                   `json:"hasProgress"`
	NextExercise int                    `json:"nextExercise"`
	Session      *progress.SessionStats `json:"session"`
}

type Handler struct {
	catalog  *Catalog
	progress progressTracker
}

func NewHandler(catalog *Catalog, progress progressTracker) *Handler {
	return &Handler{
		catalog:  catalog,
		progress: progress,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users", h.HandleUsers).Methods("GET", "OPTIONS")
	r.HandleFunc("/users/{user}/plan", h.HandlePlan).Methods("GET", "OPTIONS")
	r.HandleFunc("/users/{user}/workouts/{workout}", h.HandleWorkout).Methods("GET", "OPTIONS")
}

func (h *Handler) HandleUsers(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, h.catalog.Users())
}

func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.plan")
	defer span.End()

	user := mux.Vars(r)["user"]
	plan, err := h.catalog.Plan(ctx, user)
	if err != nil {
		writeCatalogError(w, "get plan", err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, PlanResponse{
		User:       user,
		Cronograma: plan.Cronograma,
		WorkoutIDs: plan.WorkoutIDs(),
		Treinos:    plan.Treinos,
	})
}

// HandleWorkout returns a workout with the user's progress on each exercise.
func (h *Handler) HandleWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.workout")
	defer span.End()

	vars := mux.Vars(r)
	user, workoutID := vars["user"], vars["workout"]

	workout, err := h.catalog.Workout(ctx, user, workoutID)
	if err != nil {
		writeCatalogError(w, "get workout", err)
		return
	}

	// opening a workout starts today's session, or rolls over a stale one
	if err := h.progress.CheckAndResetWorkoutSession(ctx, user, workoutID); err != nil {
		log.Errorf("catalog handler, check session %s/%s: %s", user, workoutID, err)
	}

	view := WorkoutView{
		User:      user,
		WorkoutID: workoutID,
		Foco:      workout.Foco,
		Exercises: make([]ExerciseView, 0, len(workout.Exercicios)),
	}
	for i, e := range workout.Exercicios {
		p := h.progress.GetExerciseProgress(ctx, user, workoutID, i)
		ev := ExerciseView{
			Index:       i,
			Exercise:    e,
			Kind:        e.Kind(),
			SeriesCount: e.SeriesCount(),
			TrackWeight: e.ShouldTrackWeight(),
			Progress:    p,
			Completed:   p.CompletedSeries.Len() >= e.SeriesCount(),
		}
		if e.Tempo != "" {
			ev.TimeSeconds = int(ParseDuration(string(e.Tempo)).Seconds())
		}
		if last, ok := h.progress.GetLastWeight(ctx, user, e.Nome); ok {
			ev.LastWeight = &last
		}
		if p.CompletedSeries.Len() > 0 {
			view.HasProgress = true
		}
		view.Exercises = append(view.Exercises, ev)
	}
	view.NextExercise = h.progress.NextUncompletedExercise(ctx, user, workoutID, -1, workout.SeriesCounts())
	view.Session = h.progress.GetSessionStats(ctx, user, workoutID)

	pkg.WriteJSONResponse(w, http.StatusOK, view)
}

func writeCatalogError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("catalog handler, %s: %s", op, err)
		http.Error(w, "failed to load workout plan", http.StatusInternalServerError)
	}
}
