package config

import (
	"flag"
	"go-retail/internal/retail"
	"os"
	"time"
)

const (
	serverAddressFlag    = "a"
	serverAddressEnv     = "RUN_ADDRESS"
	serverAddressDefault = "localhost:8080"
	catalogPathFlag      = "c"
	catalogPathEnv       = "CATALOG_PATH"
	catalogPathDefault   = ""
	logLevelFlag         = "l"
	logLevelEnv          = "LOG_LEVEL"
	logLevelDefault      = "info"
)

type Config struct {
	Server          retail.Config
	CatalogPath     string
	LogLevel        string
	NoticeDuration  time.Duration
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	return load(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func load(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	serverAddress := fs.String(
		serverAddressFlag,
		serverAddressDefault,
		"Server address host:port",
	)

	catalogPath := fs.String(
		catalogPathFlag,
		catalogPathDefault,
		"Product catalog YAML file, the built-in catalog when empty",
	)

	logLevel := fs.String(
		logLevelFlag,
		logLevelDefault,
		"Log level: debug, info, warn or error",
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if valStr, ok := lookupEnv(serverAddressEnv); ok {
		*serverAddress = valStr
	}

	if valStr, ok := lookupEnv(catalogPathEnv); ok {
		*catalogPath = valStr
	}

	if valStr, ok := lookupEnv(logLevelEnv); ok {
		*logLevel = valStr
	}

	return &Config{
		Server: retail.Config{
			ServerAddress:   *serverAddress,
			ShutdownTimeout: time.Second * 5,
		},
		CatalogPath:     *catalogPath,
		LogLevel:        *logLevel,
		NoticeDuration:  time.Second * 3,
		ShutdownTimeout: time.Second * 5,
	}, nil
}
