package backup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/treinoapp/internal/kvstore"
	"github.com/2beens/treinoapp/internal/progress"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
)

const SnapshotVersion = "1.0.0"

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is a full copy of the namespace. Data maps full keys (namespace
// included) to the raw stored JSON text.
type Snapshot struct {
	Version    string             `json:"version"`
	ExportDate progress.Timestamp `json:"exportDate"`
	Data       map[string]string  `json:"data"`
}

func (s *Snapshot) Validate() error {
	if s == nil || s.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidSnapshot)
	}
	if s.Data == nil {
		return fmt.Errorf("%w: missing data", ErrInvalidSnapshot)
	}
	return nil
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Service exports and restores everything stored under one namespace.
type Service struct {
	store     kvstore.Store
	namespace string
	clock     progress.Clock
}

func NewService(store kvstore.Store, namespace string, clock progress.Clock) *Service {
	if namespace == "" {
		namespace = kvstore.DefaultNamespace
	}
	return &Service{
		store:     store,
		namespace: namespace,
		clock:     clock,
	}
}

func (s *Service) Export(ctx context.Context) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	keys, err := s.store.Keys(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		ExportDate: progress.NewTimestamp(s.clock.Now()),
		Data:       make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		value, err := s.store.Get(ctx, key)
		if errors.Is(err, kvstore.ErrNotFound) {
			// removed while exporting
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		snapshot.Data[s.namespace+key] = string(value)
	}

	log.Debugf("backup, exported %d entries", len(snapshot.Data))
	return snapshot, nil
}

// Import replaces everything in the namespace with the snapshot data.
// Entries whose key is outside the namespace are skipped.
func (s *Service) Import(ctx context.Context, snapshot *Snapshot) (_ ImportResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := snapshot.Validate(); err != nil {
		return ImportResult{}, err
	}

	if err := s.store.Clear(ctx); err != nil {
		return ImportResult{}, fmt.Errorf("clear: %w", err)
	}

	var result ImportResult
	for fullKey, value := range snapshot.Data {
		key, ok := strings.CutPrefix(fullKey, s.namespace)
		if !ok || key == "" {
			log.Warnf("backup, import skips foreign key: %s", fullKey)
			result.Skipped++
			continue
		}
		if setErr := s.store.Set(ctx, key, []byte(value)); setErr != nil {
			err = multierr.Append(err, fmt.Errorf("set %s: %w", key, setErr))
			continue
		}
		result.Imported++
	}

	log.Infof("backup, imported %d entries, skipped %d", result.Imported, result.Skipped)
	return result, err
}

// ClearAll removes everything stored under the namespace.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	log.Warnln("backup, all stored data cleared")
	return nil
}
