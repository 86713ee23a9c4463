package backup

import (
	"context"
	"time"

	"github.com/2beens/treinoapp/internal/catalog"
	"github.com/2beens/treinoapp/internal/progress"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

const summaryExportType = "weekly_summary"

type progressReader interface {
	GetExerciseProgress(ctx context.Context, userID, workoutID string, exerciseIndex int) progress.ExerciseProgress
	GetWeights(ctx context.Context, userID, exerciseName string) []progress.WeightEntry
	GetLastWeight(ctx context.Context, userID, exerciseName string) (float64, bool)
}

type planSource interface {
	Plan(ctx context.Context, userID string) (*catalog.Plan, error)
}

type WeekPeriod struct {
	Start progress.Day `json:"start"`
	End   progress.Day `json:"end"`
}

type SummaryMetadata struct {
	User       string     `json:"user"`
	ExportDate time.Time  `json:"exportDate"`
	ExportType string     `json:"exportType"`
	WeekPeriod WeekPeriod `json:"weekPeriod"`
}

type SeriesSummary struct {
	Total                int `json:"total"`
	Completed            int `json:"completed"`
	CompletionPercentage int `json:"completionPercentage"`
}

type WeightHistoryEntry struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

type WeightSummary struct {
	LastUsed *float64             `json:"lastUsed"`
	History  []WeightHistoryEntry `json:"history"`
}

type ExerciseReport struct {
	Name         string        `json:"name"`
	Series       SeriesSummary `json:"series"`
	Reps         *string       `json:"reps"`
	Tempo        *string       `json:"tempo"`
	Weight       WeightSummary `json:"weight"`
	WasCompleted bool          `json:"wasCompleted"`
	ExerciseType string        `json:"exerciseType"`
}

type WorkoutReport struct {
	WorkoutID   string           `json:"workoutId"`
	WorkoutName string           `json:"workoutName"`
	Exercises   []ExerciseReport `json:"exercises"`
}

type WeeklySummary struct {
	Metadata SummaryMetadata `json:"metadata"`
	Workouts []WorkoutReport `json:"workouts"`
}

type SummaryService struct {
	plans    planSource
	progress progressReader
	clock    progress.Clock
}

func NewSummaryService(plans planSource, progress progressReader, clock progress.Clock) *SummaryService {
	return &SummaryService{
		plans:    plans,
		progress: progress,
		clock:    clock,
	}
}

// WeekPeriodOf returns the Sunday to Saturday week holding t.
func WeekPeriodOf(t time.Time) WeekPeriod {
	start := t.AddDate(0, 0, -int(t.Weekday()))
	return WeekPeriod{
		Start: progress.DayOf(start),
		End:   progress.DayOf(start.AddDate(0, 0, 6)),
	}
}

// WeeklySummary reports the user's progress on every workout of the plan.
func (s *SummaryService) WeeklySummary(ctx context.Context, userID string) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup.weekly_summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, err := s.plans.Plan(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	summary := &WeeklySummary{
		Metadata: SummaryMetadata{
			User:       userID,
			ExportDate: now.UTC(),
			ExportType: summaryExportType,
			WeekPeriod: WeekPeriodOf(now),
		},
		Workouts: make([]WorkoutReport, 0, len(plan.Treinos)),
	}

	for _, workoutID := range plan.WorkoutIDs() {
		workout := plan.Treinos[workoutID]
		report := WorkoutReport{
			WorkoutID:   workoutID,
			WorkoutName: workout.Foco,
			Exercises:   make([]ExerciseReport, 0, len(workout.Exercicios)),
		}
		for i, e := range workout.Exercicios {
			report.Exercises = append(report.Exercises, s.exerciseReport(ctx, userID, workoutID, i, e))
		}
		summary.Workouts = append(summary.Workouts, report)
	}

	return summary, nil
}

func (s *SummaryService) exerciseReport(ctx context.Context, userID, workoutID string, index int, e catalog.Exercise) ExerciseReport {
	p := s.progress.GetExerciseProgress(ctx, userID, workoutID, index)
	total := e.SeriesCount()
	completed := p.CompletedSeries.Len()

	report := ExerciseReport{
		Name: e.Nome,
		Series: SeriesSummary{
			Total:                total,
			Completed:            completed,
			CompletionPercentage: completionPercentage(completed, total),
		},
		Weight: WeightSummary{
			History: []WeightHistoryEntry{},
		},
		WasCompleted: completed == total,
		ExerciseType: e.Kind(),
	}
	if e.Reps != "" {
		reps := string(e.Reps)
		report.Reps = &reps
	}
	if e.Tempo != "" {
		tempo := string(e.Tempo)
		report.Tempo = &tempo
	}
	if last, ok := s.progress.GetLastWeight(ctx, userID, e.Nome); ok {
		report.Weight.LastUsed = &last
	}
	for _, w := range s.progress.GetWeights(ctx, userID, e.Nome) {
		report.Weight.History = append(report.Weight.History, WeightHistoryEntry{
			Value: w.Value,
			Date:  w.Date.UTC(),
		})
	}
	return report
}

func completionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	// rounded half up
	return (completed*100 + total/2) / total
}
