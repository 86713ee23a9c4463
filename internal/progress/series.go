package progress

import (
	"context"
	"fmt"

	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

// ToggleSeries flips the completion of one set and saves the result.
func (s *Service) ToggleSeries(ctx context.Context, userID, workoutID string, exerciseIndex, seriesIndex int) (_ ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.series.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if seriesIndex < 0 {
		return ExerciseProgress{}, fmt.Errorf("%w: %d", ErrInvalidSeries, seriesIndex)
	}

	p := s.GetExerciseProgress(ctx, userID, workoutID, exerciseIndex)
	p.CompletedSeries.Toggle(seriesIndex)
	p.CurrentSeries = p.CompletedSeries.Len()

	if err := s.SetExerciseProgress(ctx, userID, workoutID, exerciseIndex, p); err != nil {
		return ExerciseProgress{}, err
	}
	p.LastUpdated = NewTimestamp(s.clock.Now())
	return p, nil
}

// CompleteAllSeries marks sets 0..totalSeries-1 complete. An exercise holding
// exactly those sets is left untouched; any other set is replaced. totalSeries below 1 counts as 1.
func (s *Service) CompleteAllSeries(ctx context.Context, userID, workoutID string, exerciseIndex, totalSeries int) (_ ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.series.completeall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	totalSeries = max(totalSeries, 1)

	p := s.GetExerciseProgress(ctx, userID, workoutID, exerciseIndex)
	if p.CompletedSeries.Len() == totalSeries && allCompleted(p.CompletedSeries, totalSeries) {
		return p, nil
	}

	p.CompletedSeries = NewSeriesSet()
	for i := 0; i < totalSeries; i++ {
		p.CompletedSeries.Add(i)
	}
	p.CurrentSeries = totalSeries

	if err := s.SetExerciseProgress(ctx, userID, workoutID, exerciseIndex, p); err != nil {
		return ExerciseProgress{}, err
	}
	p.LastUpdated = NewTimestamp(s.clock.Now())
	return p, nil
}

// HasAnyProgress reports whether any of the first exerciseCount exercises has a completed set.
func (s *Service) HasAnyProgress(ctx context.Context, userID, workoutID string, exerciseCount int) bool {
	for i := 0; i < exerciseCount; i++ {
		if s.GetExerciseProgress(ctx, userID, workoutID, i).CompletedSeries.Len() > 0 {
			return true
		}
	}
	return false
}

// NextUncompletedExercise returns the first exercise after the given index with
// any of sets 0..n-1 still open, or -1. seriesCounts holds the set count per exercise.
func (s *Service) NextUncompletedExercise(ctx context.Context, userID, workoutID string, after int, seriesCounts []int) int {
	for i := max(after+1, 0); i < len(seriesCounts); i++ {
		total := max(seriesCounts[i], 1)
		if !allCompleted(s.GetExerciseProgress(ctx, userID, workoutID, i).CompletedSeries, total) {
			return i
		}
	}
	return -1
}

func allCompleted(set SeriesSet, totalSeries int) bool {
	for i := 0; i < totalSeries; i++ {
		if !set.Contains(i) {
			return false
		}
	}
	return true
}
