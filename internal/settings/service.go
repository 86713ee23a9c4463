package settings

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

// Service keeps the per-install preferences. Stored values are merged over
// the defaults on write, and reads fall back to the defaults.
type Service struct {
	store          kvstore.Store
	metricsManager *metrics.Manager
}

func NewService(store kvstore.Store, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		metricsManager: metricsManager,
	}
}

func (s *Service) GetTimerSettings(ctx context.Context) TimerSettings {
	settings := DefaultTimerSettings()
	if !s.getJSON(ctx, timerSettingsKey, &settings) {
		return DefaultTimerSettings()
	}
	return settings
}

func (s *Service) SetTimerSettings(ctx context.Context, patch TimerSettingsPatch) (TimerSettings, error) {
	settings := patch.Apply(DefaultTimerSettings())
	if err := settings.Validate(); err != nil {
		return TimerSettings{}, err
	}
	if err := s.setJSON(ctx, timerSettingsKey, settings); err != nil {
		return TimerSettings{}, err
	}
	return settings, nil
}

func (s *Service) GetAppSettings(ctx context.Context) AppSettings {
	settings := DefaultAppSettings()
	if !s.getJSON(ctx, appSettingsKey, &settings) {
		return DefaultAppSettings()
	}
	return settings
}

func (s *Service) SetAppSettings(ctx context.Context, patch AppSettingsPatch) (AppSettings, error) {
	settings := patch.Apply(DefaultAppSettings())
	if err := settings.Validate(); err != nil {
		return AppSettings{}, err
	}
	if err := s.setJSON(ctx, appSettingsKey, settings); err != nil {
		return AppSettings{}, err
	}
	return settings, nil
}

func (s *Service) GetCurrent(ctx context.Context) Current {
	var c Current
	s.getJSON(ctx, currentUserKey, &c.User)
	s.getJSON(ctx, currentWorkoutKey, &c.Workout)
	return c
}

func (s *Service) SetCurrentUser(ctx context.Context, userID string) error {
	return s.setOrRemove(ctx, currentUserKey, userID)
}

func (s *Service) SetCurrentWorkout(ctx context.Context, workoutID string) error {
	return s.setOrRemove(ctx, currentWorkoutKey, workoutID)
}

func (s *Service) SetCurrent(ctx context.Context, patch CurrentPatch) (Current, error) {
	if patch.User != nil {
		if err := s.SetCurrentUser(ctx, *patch.User); err != nil {
			return Current{}, err
		}
	}
	if patch.Workout != nil {
		if err := s.SetCurrentWorkout(ctx, *patch.Workout); err != nil {
			return Current{}, err
		}
	}
	return s.GetCurrent(ctx), nil
}

func (s *Service) setOrRemove(ctx context.Context, key, value string) error {
	if value == "" {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	}
	return s.setJSON(ctx, key, value)
}

func (s *Service) getJSON(ctx context.Context, key string, v any) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.settings.get")
	defer span.End()

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Errorf("settings, get %s: %s", key, err)
			span.RecordError(err)
		}
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		log.Warnf("settings, corrupt value under %s, using default: %s", key, err)
		s.metricsManager.CounterCorruptValues.Inc()
		return false
	}
	return true
}

func (s *Service) setJSON(ctx context.Context, key string, v any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.settings.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
