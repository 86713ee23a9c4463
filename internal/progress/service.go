package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/treinoapp/internal/telemetry/metrics"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

const (
	MaxWeightEntries      = 3
	MaxHistoryRecords     = 10
	DefaultHistoryLimit   = 10
	SessionActivityWindow = 30 * time.Minute
)

var (
	ErrInvalidSeries = errors.New("invalid series index")
	ErrInvalidRecord = errors.New("invalid workout session record")
)

// Service tracks per-exercise completion, weights and workout sessions.
// Every progress read first runs the calendar-day rollover check for its (user, workout) pair.
type Service struct {
	repo           *Repo
	clock          Clock
	metricsManager *metrics.Manager
}

func NewService(repo *Repo, clock Clock, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

func (s *Service) GetExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int) ExerciseProgress {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.get")
	defer span.End()

	if err := s.CheckAndResetWorkoutSession(ctx, userID, workoutID); err != nil {
		log.Errorf("get exercise progress, session check %s/%s: %s", userID, workoutID, err)
	}

	p, ok := s.repo.GetProgress(ctx, ProgressKey{UserID: userID, WorkoutID: workoutID, ExerciseIndex: exerciseIndex})
	if !ok {
		return DefaultExerciseProgress()
	}
	return p
}

// SetExerciseProgress overwrites the stored progress, stamping LastUpdated.
// StartTime is kept at millisecond precision, the precision it is stored with.
func (s *Service) SetExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int, p ExerciseProgress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !p.StartTime.IsZero() {
		p.StartTime = NewTimestamp(p.StartTime.Truncate(time.Millisecond))
	}
	p.LastUpdated = NewTimestamp(s.clock.Now())
	key := ProgressKey{UserID: userID, WorkoutID: workoutID, ExerciseIndex: exerciseIndex}
	if err := s.repo.SetProgress(ctx, key, p); err != nil {
		return fmt.Errorf("set exercise progress: %w", err)
	}
	s.metricsManager.CounterProgressWrites.Inc()
	return nil
}

func (s *Service) ClearExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := ProgressKey{UserID: userID, WorkoutID: workoutID, ExerciseIndex: exerciseIndex}
	if err := s.repo.Remove(ctx, key); err != nil {
		return fmt.Errorf("clear exercise progress: %w", err)
	}
	return nil
}

// CheckAndResetWorkoutSession creates the session when missing, wipes the pair's
// progress and starts over when the session is from an earlier day, otherwise
// only refreshes the last access time.
func (s *Service) CheckAndResetWorkoutSession(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.session.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := SessionKey{UserID: userID, WorkoutID: workoutID}
	session, ok := s.repo.GetSession(ctx, key)
	if !ok {
		return s.newSession(ctx, key)
	}

	today := s.clock.Today()
	if session.Date != today {
		log.Debugf("session rollover %s/%s: %s -> %s", userID, workoutID, session.Date, today)
		if err := s.ResetWorkoutProgress(ctx, userID, workoutID); err != nil {
			return fmt.Errorf("rollover: %w", err)
		}
		s.metricsManager.CounterSessionRollovers.Inc()
		return s.newSession(ctx, key)
	}

	session.LastAccess = NewTimestamp(s.clock.Now())
	if err := s.repo.SetSession(ctx, key, *session); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (s *Service) newSession(ctx context.Context, key SessionKey) error {
	now := s.clock.Now()
	session := Session{
		Date:       DayOf(now),
		StartTime:  NewTimestamp(now),
		LastAccess: NewTimestamp(now),
	}
	if err := s.repo.SetSession(ctx, key, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// ResetWorkoutProgress removes the progress of every exercise of the pair.
func (s *Service) ResetWorkoutProgress(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	keys, err := s.repo.ProgressKeys(ctx, userID, workoutID)
	if err != nil {
		return fmt.Errorf("reset workout progress: %w", err)
	}

	var removeErr error
	for _, key := range keys {
		removeErr = multierr.Append(removeErr, s.repo.Remove(ctx, key))
	}
	if removeErr != nil {
		return fmt.Errorf("reset workout progress: %w", removeErr)
	}

	log.Debugf("reset progress for %s/%s, %d exercises", userID, workoutID, len(keys))
	return nil
}

// ResetCurrentWorkoutSession restarts the pair within the same day.
func (s *Service) ResetCurrentWorkoutSession(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.session.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.ResetWorkoutProgress(ctx, userID, workoutID); err != nil {
		return err
	}
	return s.newSession(ctx, SessionKey{UserID: userID, WorkoutID: workoutID})
}

func (s *Service) GetSession(ctx context.Context, userID, workoutID string) (*Session, bool) {
	return s.repo.GetSession(ctx, SessionKey{UserID: userID, WorkoutID: workoutID})
}

func (s *Service) WasWorkoutStartedToday(ctx context.Context, userID, workoutID string) bool {
	session, ok := s.GetSession(ctx, userID, workoutID)
	if !ok {
		return false
	}
	return session.Date == s.clock.Today()
}

// GetSessionStats returns nil when the pair has no session.
func (s *Service) GetSessionStats(ctx context.Context, userID, workoutID string) *SessionStats {
	session, ok := s.GetSession(ctx, userID, workoutID)
	if !ok {
		return nil
	}

	now := s.clock.Now()
	lastActivity := now.Sub(session.LastAccess.Time)
	return &SessionStats{
		SessionDate:     session.Date,
		SessionDuration: DurationMs(now.Sub(session.StartTime.Time)),
		LastActivity:    DurationMs(lastActivity),
		IsActive:        lastActivity < SessionActivityWindow,
	}
}

// AddWeight records weight as the most recent entry, keeping the last three.
// Non-positive or non-finite weights are ignored.
func (s *Service) AddWeight(ctx context.Context, userID, exerciseName string, weight float64) (err error) {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		log.Debugf("add weight %s/%s: ignoring invalid weight %v", userID, exerciseName, weight)
		return nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.weights.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := WeightsKey{UserID: userID, ExerciseName: exerciseName}
	weights := s.repo.GetWeights(ctx, key)
	weights = append([]WeightEntry{{Value: weight, Date: NewTimestamp(s.clock.Now())}}, weights...)
	if len(weights) > MaxWeightEntries {
		weights = weights[:MaxWeightEntries]
	}

	if err := s.repo.SetWeights(ctx, key, weights); err != nil {
		return fmt.Errorf("add weight: %w", err)
	}
	return nil
}

// GetWeights returns the weights most recent first.
func (s *Service) GetWeights(ctx context.Context, userID, exerciseName string) []WeightEntry {
	return s.repo.GetWeights(ctx, WeightsKey{UserID: userID, ExerciseName: exerciseName})
}

func (s *Service) GetLastWeight(ctx context.Context, userID, exerciseName string) (float64, bool) {
	weights := s.GetWeights(ctx, userID, exerciseName)
	if len(weights) == 0 {
		return 0, false
	}
	return weights[0].Value, true
}

// StartWorkoutSession returns a fresh record; nothing is stored until it is completed.
func (s *Service) StartWorkoutSession(ctx context.Context, userID, workoutID string) WorkoutSessionRecord {
	_, span := tracing.GlobalTracer.Start(ctx, "service.progress.workout.start")
	defer span.End()

	return WorkoutSessionRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		WorkoutID:       workoutID,
		StartTime:       NewTimestamp(s.clock.Now()),
		CurrentExercise: 0,
		Exercises:       []ExerciseSummary{},
	}
}

// CompleteWorkoutSession stamps the record as completed and puts it at the head of the user's history.
func (s *Service) CompleteWorkoutSession(ctx context.Context, record WorkoutSessionRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.workout.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.UserID == "" {
		return ErrInvalidRecord
	}

	record.EndTime = NewTimestamp(s.clock.Now())
	record.Completed = true
	if record.StartTime.IsZero() {
		record.StartTime = record.EndTime
	}
	if record.Exercises == nil {
		record.Exercises = []ExerciseSummary{}
	}

	key := HistoryKey{UserID: record.UserID}
	history := s.repo.GetHistory(ctx, key)
	history = append([]WorkoutSessionRecord{record}, history...)
	if len(history) > MaxHistoryRecords {
		history = history[:MaxHistoryRecords]
	}

	if err := s.repo.SetHistory(ctx, key, history); err != nil {
		return fmt.Errorf("complete workout session: %w", err)
	}
	s.metricsManager.CounterWorkoutsCompleted.Inc()
	return nil
}

// GetWorkoutHistory returns up to limit records, most recent first. limit <= 0 means DefaultHistoryLimit.
func (s *Service) GetWorkoutHistory(ctx context.Context, userID string, limit int) []WorkoutSessionRecord {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	history := s.repo.GetHistory(ctx, HistoryKey{UserID: userID})
	if len(history) > limit {
		history = history[:limit]
	}
	return history
}
