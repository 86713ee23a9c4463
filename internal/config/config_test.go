package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
port = 9000
log_level = "trace"
store_backend = "memory"
catalog_dir = "./data"
timezone = "America/Sao_Paulo"

[development.catalog_users]
jana = "treinoJana.json"
leandro = "treinoLeandro.json"

[production]
port = 443
host = "0.0.0.0"
store_backend = "redis"
redis_host = "redis"
redis_port = "6379"
catalog_base_url = "https://treino.example.com/data"
local_cache_size_mb = 16
allowed_origins = ["https://treino.example.com"]

[production.catalog_users]
leandro = "treinoLeandro.json"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, testToml)

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "treino-app-", cfg.StoreNamespace)
	assert.Equal(t, 60, cfg.LocalCacheTTLSeconds)
	assert.Equal(t, 5, cfg.LoginRateLimitAllowedPerMin)
	assert.Equal(t, "treinoJana.json", cfg.CatalogUsers["jana"])
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	cfg, err = Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 16, cfg.LocalCacheSizeMB)
	assert.Equal(t, []string{"https://treino.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "Local", cfg.Timezone)

	_, err = Load("staging", path)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "missing port",
			content: "[development]\nstore_backend = \"memory\"\ncatalog_dir = \"x\"\n[development.catalog_users]\na = \"a.json\"\n",
			errPart: "port is required",
		},
		{
			name:    "redis without host",
			content: "[development]\nport = 1\ncatalog_dir = \"x\"\n[development.catalog_users]\na = \"a.json\"\n",
			errPart: "redis_host",
		},
		{
			name:    "unknown backend",
			content: "[development]\nport = 1\nstore_backend = \"aerospike\"\ncatalog_dir = \"x\"\n[development.catalog_users]\na = \"a.json\"\n",
			errPart: "unknown store_backend",
		},
		{
			name:    "no catalog source",
			content: "[development]\nport = 1\nstore_backend = \"memory\"\n[development.catalog_users]\na = \"a.json\"\n",
			errPart: "catalog_dir",
		},
		{
			name:    "bad timezone",
			content: "[development]\nport = 1\nstore_backend = \"memory\"\ncatalog_dir = \"x\"\ntimezone = \"Mars/Olympus\"\n[development.catalog_users]\na = \"a.json\"\n",
			errPart: "load timezone",
		},
		{
			name:    "missing section",
			content: "[production]\nport = 1\n",
			errPart: "no config section",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load("dev", writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("TREINO_REDIS_PASS", "redis-pass")
	t.Setenv("TREINO_ADMIN_USERNAME", "admin")
	t.Setenv("HONEYCOMB_ENABLED", "true")

	secrets, err := LoadSecrets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "redis-pass", secrets.RedisPassword)
	assert.Equal(t, "admin", secrets.AdminUsername)
	assert.True(t, secrets.HoneycombEnabled)
}
