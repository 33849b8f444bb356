package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
	"github.com/dmitrijs2005/assetkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of a config file. Pointer fields tell
// "absent" apart from a zero value so a file only overrides what it names.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	DatabaseDSN      *string         `json:"database_dsn"`
	LogLevel         *string         `json:"log_level"`
	MaxOpenConns     *int            `json:"max_open_conns"`
	MaxIdleConns     *int            `json:"max_idle_conns"`
	ConnMaxLifetime  *timex.Duration `json:"conn_max_lifetime"`
	ReadTimeout      *timex.Duration `json:"read_timeout"`
	WriteTimeout     *timex.Duration `json:"write_timeout"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	AllowedOrigins   []string        `json:"allowed_origins"`
	AutoMigrate      *bool           `json:"auto_migrate"`
}

// parseJson loads the file named by -c/-config in args, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.MaxOpenConns != nil {
		config.MaxOpenConns = *c.MaxOpenConns
	}
	if c.MaxIdleConns != nil {
		config.MaxIdleConns = *c.MaxIdleConns
	}
	if c.ConnMaxLifetime != nil {
		config.ConnMaxLifetime = c.ConnMaxLifetime.Duration
	}
	if c.ReadTimeout != nil {
		config.ReadTimeout = c.ReadTimeout.Duration
	}
	if c.WriteTimeout != nil {
		config.WriteTimeout = c.WriteTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.AutoMigrate != nil {
		config.AutoMigrate = *c.AutoMigrate
	}
}
