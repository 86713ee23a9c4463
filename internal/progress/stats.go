package progress

import (
	"context"
	"time"

	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

const (
	statsHistoryLimit = 100
	streakMaxDays     = 30
	weeklyWindow      = 7 * 24 * time.Hour
)

func (s *Service) GetWorkoutStats(ctx context.Context, userID string) WorkoutStats {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.stats")
	defer span.End()

	history := s.GetWorkoutHistory(ctx, userID, statsHistoryLimit)
	return computeWorkoutStats(history, s.clock.Now())
}

func computeWorkoutStats(history []WorkoutSessionRecord, now time.Time) WorkoutStats {
	stats := WorkoutStats{
		TotalWorkouts:  len(history),
		WorkoutsByType: make(map[string]int),
	}
	if len(history) == 0 {
		return stats
	}

	var (
		totalTime time.Duration
		timed     int
	)
	for _, rec := range history {
		if !rec.StartTime.IsZero() && !rec.EndTime.IsZero() {
			totalTime += rec.EndTime.Sub(rec.StartTime.Time)
			timed++
		}

		workoutType := rec.WorkoutID
		if workoutType == "" {
			workoutType = "unknown"
		}
		stats.WorkoutsByType[workoutType]++

		if rec.StartTime.After(now.Add(-weeklyWindow)) {
			stats.WeeklyFrequency++
		}
	}
	stats.TotalTime = DurationMs(totalTime)
	if timed > 0 {
		stats.AverageTime = DurationMs(totalTime / time.Duration(timed))
	}

	stats.CurrentStreak = currentStreak(history, now)
	return stats
}

// currentStreak counts consecutive calendar days with a started workout, walking
// back from today. A missing workout today does not break the streak.
func currentStreak(history []WorkoutSessionRecord, now time.Time) int {
	y, m, d := now.Date()
	loc := now.Location()

	streak := 0
	for i := 0; i < streakMaxDays; i++ {
		dayStart := time.Date(y, m, d-i, 0, 0, 0, 0, loc)
		nextDay := time.Date(y, m, d-i+1, 0, 0, 0, 0, loc)

		hasWorkout := false
		for _, rec := range history {
			if rec.StartTime.IsZero() {
				continue
			}
			if !rec.StartTime.Before(dayStart) && rec.StartTime.Before(nextDay) {
				hasWorkout = true
				break
			}
		}

		if hasWorkout {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
