package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	KindTime  = "tempo"
	KindReps  = "repetições"
	KindMixed = "misto"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidPlan     = errors.New("invalid plan")
)

// cardio exercises get no weight tracking
var cardioExercises = []string{"bicicleta", "elíptico", "corrida", "caminhada"}

// FlexString decodes from either a JSON string or a number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// Plan is a user's weekly workout plan.
type Plan struct {
	Cronograma *Schedule          `json:"cronograma"`
	Treinos    map[string]Workout `json:"treinos"`
}

type Schedule struct {
	Frequencia FlexString `json:"frequencia"`
	Dias       []string   `json:"dias,omitempty"`
}

type Workout struct {
	Foco       string     `json:"foco"`
	Exercicios []Exercise `json:"exercicios"`
}

type Exercise struct {
	Nome   string     `json:"nome"`
	Series int        `json:"series,omitempty"`
	Reps   FlexString `json:"reps,omitempty"`
	Tempo  FlexString `json:"tempo,omitempty"`
	Link   string     `json:"link,omitempty"`
	Link2  string     `json:"link2,omitempty"`
	Imagem string     `json:"imagem,omitempty"`
}

// SeriesCount is the number of sets, 1 when unset.
func (e Exercise) SeriesCount() int {
	if e.Series <= 0 {
		return 1
	}
	return e.Series
}

func (e Exercise) IsTimeBased() bool {
	return e.Tempo != "" && e.Reps == ""
}

func (e Exercise) Kind() string {
	switch {
	case e.Tempo != "" && e.Reps == "":
		return KindTime
	case e.Reps != "" && e.Tempo == "":
		return KindReps
	default:
		return KindMixed
	}
}

func (e Exercise) ShouldTrackWeight() bool {
	if e.IsTimeBased() {
		return false
	}
	name := strings.ToLower(e.Nome)
	for _, cardio := range cardioExercises {
		if strings.Contains(name, cardio) {
			return false
		}
	}
	return true
}

func (w Workout) SeriesCounts() []int {
	counts := make([]int, len(w.Exercicios))
	for i, e := range w.Exercicios {
		counts[i] = e.SeriesCount()
	}
	return counts
}

// WorkoutIDs returns the plan's workout ids in sorted order.
func (p *Plan) WorkoutIDs() []string {
	ids := make([]string, 0, len(p.Treinos))
	for id := range p.Treinos {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p *Plan) Workout(workoutID string) (Workout, error) {
	w, ok := p.Treinos[workoutID]
	if !ok {
		return Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, workoutID)
	}
	return w, nil
}

func (p *Plan) Validate() error {
	if p.Cronograma == nil {
		return fmt.Errorf("%w: missing cronograma", ErrInvalidPlan)
	}
	if len(p.Treinos) == 0 {
		return fmt.Errorf("%w: no treinos", ErrInvalidPlan)
	}
	for _, id := range p.WorkoutIDs() {
		w := p.Treinos[id]
		if len(w.Exercicios) == 0 {
			return fmt.Errorf("%w: workout %s has no exercises", ErrInvalidPlan, id)
		}
		for i, e := range w.Exercicios {
			if e.Nome == "" {
				return fmt.Errorf("%w: workout %s exercise %d has no name", ErrInvalidPlan, id, i)
			}
		}
	}
	return nil
}

func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseDuration reads exercise times like "30s", "2min", "1.5min", "5m", "1h", "1:30" or "45" (seconds).
// Unparsable input gives 0.
func ParseDuration(s string) time.Duration {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0
	}

	seconds := func(v string, unit time.Duration) time.Duration {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 {
			return 0
		}
		return time.Duration(f * float64(unit))
	}

	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		m, _ := strconv.Atoi(parts[0])
		sec, _ := strconv.Atoi(parts[1])
		return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
	case strings.HasSuffix(s, "min"):
		return seconds(strings.TrimSuffix(s, "min"), time.Minute)
	case strings.HasSuffix(s, "s"):
		return seconds(strings.TrimSuffix(s, "s"), time.Second)
	case strings.HasSuffix(s, "m"):
		return seconds(strings.TrimSuffix(s, "m"), time.Minute)
	case strings.HasSuffix(s, "h"):
		return seconds(strings.TrimSuffix(s, "h"), time.Hour)
	default:
		return seconds(s, time.Second)
	}
}
