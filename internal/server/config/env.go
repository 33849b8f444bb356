package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// Environment variable names read by parseEnv.
const (
	EnvHTTPAddr       = "HTTP_ADDR"
	EnvDatabaseDSN    = "DATABASE_DSN"
	EnvLogLevel       = "LOG_LEVEL"
	EnvMaxOpenConns   = "DB_MAX_OPEN_CONNECTIONS"
	EnvAllowedOrigins = "ALLOWED_ORIGINS"
	EnvAutoMigrate    = "AUTO_MIGRATE"
)

// parseEnv overlays config with any of the variables above that are set.
// A .env file in the working directory is loaded first by godotenv.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvHTTPAddr); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvMaxOpenConns); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvMaxOpenConns, err))
		}
		config.MaxOpenConns = n
	}
	if v, ok := os.LookupEnv(EnvAllowedOrigins); ok {
		config.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvAutoMigrate); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvAutoMigrate, err))
		}
		config.AutoMigrate = b
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
