package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":           "www.example:9000",
		"database_dsn":            "postgres://example/auth",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "24h",
		"bcrypt_cost":             12,
		"queue_url":               "http://queue/email",
		"queue_region":            "region",
		"queue_base_endpoint":     "base_endpoint",
		"queue_access_key":        "user",
		"queue_secret_key":        "password",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "postgres://example/auth", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, "http://queue/email", cfg.QueueURL)
		assert.Equal(t, "region", cfg.QueueRegion)
		assert.Equal(t, "base_endpoint", cfg.QueueBaseEndpoint)
		assert.Equal(t, "user", cfg.QueueAccessKey)
		assert.Equal(t, "password", cfg.QueueSecretKey)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddr:          "defaults:1234",
			DatabaseDSN:           "postgres://defaults/auth",
			SecretKey:             "key",
			TokenValidityDuration: 2 * time.Hour,
			BcryptCost:            11,
			QueueURL:              "qurl",
			QueueRegion:           "qregion",
			QueueBaseEndpoint:     "qbase",
			QueueAccessKey:        "qaccess",
			QueueSecretKey:        "qsecret",
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, "postgres://defaults/auth", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, 11, cfg.BcryptCost)
		assert.Equal(t, "qurl", cfg.QueueURL)
		assert.Equal(t, "qregion", cfg.QueueRegion)
		assert.Equal(t, "qbase", cfg.QueueBaseEndpoint)
		assert.Equal(t, "qaccess", cfg.QueueAccessKey)
		assert.Equal(t, "qsecret", cfg.QueueSecretKey)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
