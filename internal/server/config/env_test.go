package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupEnv(k string) (string, bool) { return os.LookupEnv(k) }

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvHTTPAddr, ":9999")
	t.Setenv(EnvDatabaseDSN, "postgres://env")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvMaxOpenConns, "50")
	t.Setenv(EnvAllowedOrigins, "http://a.example, http://b.example,")
	t.Setenv(EnvAutoMigrate, "false")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, ":9999", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 50, c.MaxOpenConns)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, c.AllowedOrigins)
	assert.False(t, c.AutoMigrate)
}

func TestParseEnv_InvalidValuesPanic(t *testing.T) {
	t.Run("max open connections", func(t *testing.T) {
		t.Setenv(EnvMaxOpenConns, "many")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
	t.Run("auto migrate", func(t *testing.T) {
		t.Setenv(EnvAutoMigrate, "perhaps")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
