package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/internal/kvstore"
	"github.com/2beens/treinoapp/internal/telemetry/metrics"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

// Repo maps typed keys and entities onto the flat key-value store.
// Reads never fail: absent, unreadable or corrupt values come back as not found.
type Repo struct {
	store          kvstore.Store
	metricsManager *metrics.Manager
}

func NewRepo(store kvstore.Store, metricsManager *metrics.Manager) *Repo {
	return &Repo{
		store:          store,
		metricsManager: metricsManager,
	}
}

func (r *Repo) GetProgress(ctx context.Context, key ProgressKey) (ExerciseProgress, bool) {
	var p ExerciseProgress
	if !r.getJSON(ctx, key, &p) {
		return ExerciseProgress{}, false
	}
	p.normalize()
	return p, true
}

func (r *Repo) SetProgress(ctx context.Context, key ProgressKey, p ExerciseProgress) error {
	p.normalize()
	return r.setJSON(ctx, key, p)
}

func (r *Repo) Remove(ctx context.Context, key Key) error {
	if err := r.store.Remove(ctx, key.Encode()); err != nil {
		return fmt.Errorf("remove %s: %w", key.Encode(), err)
	}
	return nil
}

// ProgressKeys lists the stored exercise progress keys of one (user, workout) pair.
func (r *Repo) ProgressKeys(ctx context.Context, userID, workoutID string) (_ []ProgressKey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.keys")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rawKeys, err := r.store.Keys(ctx, progressPrefix(userID, workoutID))
	if err != nil {
		return nil, fmt.Errorf("list progress keys: %w", err)
	}

	keys := make([]ProgressKey, 0, len(rawKeys))
	for _, raw := range rawKeys {
		decoded, err := DecodeKey(raw)
		if err != nil {
			log.Warnf("progress repo, skip undecodable key [%s]: %s", raw, err)
			continue
		}
		pk, ok := decoded.(ProgressKey)
		if !ok || pk.UserID != userID || pk.WorkoutID != workoutID {
			continue
		}
		keys = append(keys, pk)
	}
	return keys, nil
}

func (r *Repo) GetSession(ctx context.Context, key SessionKey) (*Session, bool) {
	var s Session
	if !r.getJSON(ctx, key, &s) {
		return nil, false
	}
	return &s, true
}

func (r *Repo) SetSession(ctx context.Context, key SessionKey, s Session) error {
	return r.setJSON(ctx, key, s)
}

func (r *Repo) GetWeights(ctx context.Context, key WeightsKey) []WeightEntry {
	var weights []WeightEntry
	if !r.getJSON(ctx, key, &weights) || weights == nil {
		return []WeightEntry{}
	}
	return weights
}

func (r *Repo) SetWeights(ctx context.Context, key WeightsKey, weights []WeightEntry) error {
	return r.setJSON(ctx, key, weights)
}

func (r *Repo) GetHistory(ctx context.Context, key HistoryKey) []WorkoutSessionRecord {
	var history []WorkoutSessionRecord
	if !r.getJSON(ctx, key, &history) || history == nil {
		return []WorkoutSessionRecord{}
	}
	return history
}

func (r *Repo) SetHistory(ctx context.Context, key HistoryKey, history []WorkoutSessionRecord) error {
	return r.setJSON(ctx, key, history)
}

func (r *Repo) getJSON(ctx context.Context, key Key, v any) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer span.End()

	raw, err := r.store.Get(ctx, key.Encode())
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Errorf("progress repo, get %s: %s", key.Encode(), err)
			span.RecordError(err)
		}
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		log.Warnf("progress repo, corrupt value under %s, using default: %s", key.Encode(), err)
		r.metricsManager.CounterCorruptValues.Inc()
		return false
	}
	return true
}

func (r *Repo) setJSON(ctx context.Context, key Key, v any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key.Encode(), err)
	}
	if err := r.store.Set(ctx, key.Encode(), raw); err != nil {
		return fmt.Errorf("set %s: %w", key.Encode(), err)
	}
	return nil
}
