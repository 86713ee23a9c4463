package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Timestamp is a point in time stored as Unix milliseconds. The zero value is encoded as null.
// Precision below a millisecond does not survive encoding.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%d", ts.UnixMilli())), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	ts.Time = time.UnixMilli(int64(ms))
	return nil
}

// DurationMs is a duration encoded as milliseconds.
type DurationMs time.Duration

func (d DurationMs) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", time.Duration(d).Milliseconds())), nil
}

func (d *DurationMs) UnmarshalJSON(data []byte) error {
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = DurationMs(time.Duration(ms) * time.Millisecond)
	return nil
}

func (d DurationMs) Duration() time.Duration {
	return time.Duration(d)
}

// SeriesSet holds the indices of completed sets. It is encoded as a sorted JSON array.
type SeriesSet map[int]struct{}

func NewSeriesSet(indices ...int) SeriesSet {
	s := make(SeriesSet, len(indices))
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

func (s SeriesSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Add ignores negative indices.
func (s SeriesSet) Add(i int) {
	if i < 0 {
		return
	}
	s[i] = struct{}{}
}

func (s SeriesSet) Remove(i int) {
	delete(s, i)
}

// Toggle flips membership of i and reports whether it is now a member.
func (s SeriesSet) Toggle(i int) bool {
	if s.Contains(i) {
		s.Remove(i)
		return false
	}
	s.Add(i)
	return s.Contains(i)
}

func (s SeriesSet) Len() int {
	return len(s)
}

func (s SeriesSet) Sorted() []int {
	indices := make([]int, 0, len(s))
	for i := range s {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func (s SeriesSet) Clone() SeriesSet {
	c := make(SeriesSet, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

func (s SeriesSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON drops duplicates and negative indices.
func (s *SeriesSet) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return fmt.Errorf("series set: %w", err)
	}
	*s = NewSeriesSet(indices...)
	return nil
}

type ExerciseProgress struct {
	CompletedSeries SeriesSet `json:"completedSeries"`
	// CurrentSeries mirrors the size of CompletedSeries.
	CurrentSeries int           `json:"currentSeries"`
	StartTime     Timestamp     `json:"startTime"`
	LastUpdated   Timestamp     `json:"lastUpdated"`
	Weights       []WeightEntry `json:"weights"`
}

func DefaultExerciseProgress() ExerciseProgress {
	return ExerciseProgress{
		CompletedSeries: NewSeriesSet(),
		CurrentSeries:   0,
		Weights:         []WeightEntry{},
	}
}

func (p *ExerciseProgress) normalize() {
	if p.CompletedSeries == nil {
		p.CompletedSeries = NewSeriesSet()
	}
	if p.Weights == nil {
		p.Weights = []WeightEntry{}
	}
}

type Session struct {
	Date       Day       `json:"date"`
	StartTime  Timestamp `json:"startTime"`
	LastAccess Timestamp `json:"lastAccess"`
}

type WeightEntry struct {
	Value float64   `json:"value"`
	Date  Timestamp `json:"date"`
}

type ExerciseSummary struct {
	Index           int `json:"index"`
	CompletedSeries int `json:"completedSeries"`
}

// WorkoutSessionRecord is one workout from start to completion. The caller holds
// the in-progress record and hands it back on completion.
type WorkoutSessionRecord struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	WorkoutID       string            `json:"workoutId"`
	StartTime       Timestamp         `json:"startTime"`
	EndTime         Timestamp         `json:"endTime"`
	Completed       bool              `json:"completed"`
	CurrentExercise int               `json:"currentExercise"`
	Exercises       []ExerciseSummary `json:"exercises"`
}

type SessionStats struct {
	SessionDate     Day        `json:"sessionDate"`
	SessionDuration DurationMs `json:"sessionDuration"`
	LastActivity    DurationMs `json:"lastActivity"`
	IsActive        bool       `json:"isActive"`
}

type WorkoutStats struct {
	TotalWorkouts   int            `json:"totalWorkouts"`
	TotalTime       DurationMs     `json:"totalTime"`
	AverageTime     DurationMs     `json:"averageTime"`
	WorkoutsByType  map[string]int `json:"workoutsByType"`
	WeeklyFrequency int            `json:"weeklyFrequency"`
	CurrentStreak   int            `json:"currentStreak"`
}
