package config

import (
	"flag"

	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-l string   log level (debug, info, warn, error)
//	-m bool     apply migrations on startup (use -m=false to disable)
//
// args is usually os.Args[1:]; it is first narrowed to these flags with
// flagx.FilterArgs so -c/-config and anything else are ignored here.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.AutoMigrate, "m", config.AutoMigrate, "apply migrations on startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
