package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "https://app.wewantwaste.co.uk/api/skips/by-location", cfg.SkipsAPI.URL)
	require.Zero(t, cfg.SkipsAPI.Timeout)
	require.Equal(t, "NR32", cfg.Session.DefaultPostcode)
	require.Equal(t, "Lowestoft", cfg.Session.DefaultArea)
	require.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	require.Equal(t, "@every 1m", cfg.Session.SweepSpec)
	require.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	require.Equal(t, "quotes", cfg.DynamoDB.QuotesTable)
	require.Empty(t, cfg.DynamoDB.Endpoint)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SKIPS_API_URL", "http://skips.local/by-location")
	t.Setenv("SKIPS_API_TIMEOUT", "15s")
	t.Setenv("DEFAULT_POSTCODE", "LE10")
	t.Setenv("DEFAULT_AREA", "Hinckley")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("QUOTES_TABLE", "skip_quotes")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, "http://skips.local/by-location", cfg.SkipsAPI.URL)
	require.Equal(t, 15*time.Second, cfg.SkipsAPI.Timeout)
	require.Equal(t, "LE10", cfg.Session.DefaultPostcode)
	require.Equal(t, "Hinckley", cfg.Session.DefaultArea)
	require.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
	require.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	require.Equal(t, "skip_quotes", cfg.DynamoDB.QuotesTable)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("SKIPS_API_TIMEOUT", "-1s")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("not a duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	t.Setenv("PORT", "0")
	require.Panics(t, func() { MustLoad() })
}
