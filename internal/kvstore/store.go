package kvstore

import (
	"context"
	"errors"
	"strings"
)

// DefaultNamespace prefixes every key the app stores.
const DefaultNamespace = "treino-app-"

var ErrNotFound = errors.New("key not found")

// Store is a flat string-keyed store. Keys passed in and returned are
// relative to the store namespace.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Remove does not fail on absent keys.
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Clear removes only keys under the namespace.
	Clear(ctx context.Context) error
}

type namespace string

func (ns namespace) full(key string) string {
	return string(ns) + key
}

func (ns namespace) strip(fullKey string) (string, bool) {
	if !strings.HasPrefix(fullKey, string(ns)) {
		return "", false
	}
	return strings.TrimPrefix(fullKey, string(ns)), true
}

// likeEscape escapes SQL LIKE wildcards so a prefix is matched literally (ESCAPE '\').
func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// globEscape escapes redis glob meta characters.
func globEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
