package progress

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	progressKeyPrefix = "progress-"
	sessionKeyPrefix  = "session-"
	weightsKeyPrefix  = "weights-"
	historyKeyPrefix  = "history-"
	keySeparator      = "-"
)

var ErrInvalidKey = errors.New("invalid key")

var (
	segmentEscaper   = strings.NewReplacer("%", "%25", "-", "%2D")
	segmentUnescaper = strings.NewReplacer("%2D", "-", "%25", "%")
)

// Key is a typed store key, relative to the store namespace.
type Key interface {
	Encode() string
}

func escapeSegment(s string) string {
	return segmentEscaper.Replace(s)
}

func unescapeSegment(s string) string {
	return segmentUnescaper.Replace(s)
}

type ProgressKey struct {
	UserID        string
	WorkoutID     string
	ExerciseIndex int
}

func (k ProgressKey) Encode() string {
	return progressPrefix(k.UserID, k.WorkoutID) + strconv.Itoa(k.ExerciseIndex)
}

// progressPrefix is shared by every exercise of one (user, workout) pair.
func progressPrefix(userID, workoutID string) string {
	return progressKeyPrefix + escapeSegment(userID) + keySeparator + escapeSegment(workoutID) + keySeparator
}

type SessionKey struct {
	UserID    string
	WorkoutID string
}

func (k SessionKey) Encode() string {
	return sessionKeyPrefix + escapeSegment(k.UserID) + keySeparator + escapeSegment(k.WorkoutID)
}

type WeightsKey struct {
	UserID       string
	ExerciseName string
}

func (k WeightsKey) Encode() string {
	return weightsKeyPrefix + escapeSegment(k.UserID) + keySeparator + escapeSegment(k.ExerciseName)
}

type HistoryKey struct {
	UserID string
}

func (k HistoryKey) Encode() string {
	return historyKeyPrefix + escapeSegment(k.UserID)
}

// DecodeKey parses an encoded progress, session, weights or history key.
func DecodeKey(encoded string) (Key, error) {
	switch {
	case strings.HasPrefix(encoded, progressKeyPrefix):
		parts, err := splitSegments(strings.TrimPrefix(encoded, progressKeyPrefix), 3)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, encoded)
		}
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: bad exercise index in %s", ErrInvalidKey, encoded)
		}
		return ProgressKey{UserID: parts[0], WorkoutID: parts[1], ExerciseIndex: idx}, nil
	case strings.HasPrefix(encoded, sessionKeyPrefix):
		parts, err := splitSegments(strings.TrimPrefix(encoded, sessionKeyPrefix), 2)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, encoded)
		}
		return SessionKey{UserID: parts[0], WorkoutID: parts[1]}, nil
	case strings.HasPrefix(encoded, weightsKeyPrefix):
		parts, err := splitSegments(strings.TrimPrefix(encoded, weightsKeyPrefix), 2)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, encoded)
		}
		return WeightsKey{UserID: parts[0], ExerciseName: parts[1]}, nil
	case strings.HasPrefix(encoded, historyKeyPrefix):
		parts, err := splitSegments(strings.TrimPrefix(encoded, historyKeyPrefix), 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, encoded)
		}
		return HistoryKey{UserID: parts[0]}, nil
	default:
		return nil, fmt.Errorf("%w: unknown key kind %s", ErrInvalidKey, encoded)
	}
}

func splitSegments(s string, want int) ([]string, error) {
	parts := strings.Split(s, keySeparator)
	if len(parts) != want {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrInvalidKey, want, len(parts))
	}
	for i := range parts {
		parts[i] = unescapeSegment(parts[i])
	}
	return parts, nil
}
