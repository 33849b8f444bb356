package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrHTTP = "127.0.0.1:0"
	cfg.DatabaseDSN = "postgres://u:p@127.0.0.1:1/assets?sslmode=disable&connect_timeout=1"
	cfg.LogLevel = "error"
	return cfg
}

func TestNewApp_WiresComponents(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)
	defer app.db.Close()

	assert.NotNil(t, app.logger)
	assert.NotNil(t, app.repomanager)
	assert.NotNil(t, app.assetService)
	assert.Equal(t, 25, app.db.Stats().MaxOpenConnections)
}

func TestRun_FailsWhenDatabaseUnreachable(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = app.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping")
}
