package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

// parseFlags parses all configuration flags from args into a fresh
// [StructuredConfig]. Flags left unset keep their zero value so they do not
// override other sources.
//
// Flags:
//
//	-a analysis server address, host:port or URL
//	-request-timeout request timeout (e.g., "30s", "1m"), 0 disables it
//	-f analyse this file once and print the result
//	-o directory for exported annotated images
//	-health-interval server health polling interval (e.g., "30s")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress string
	var requestTimeout time.Duration
	var inputFile string
	var outputDir string
	var healthInterval time.Duration
	var logFile string
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&serverAddress, "a", "", "Analysis server address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&inputFile, "f", "", "Analyse this X-ray file once and print the result")
	fs.StringVar(&outputDir, "o", "", "Directory for exported annotated images")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Server health polling interval (e.g., 30s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			InputFile: inputFile,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Files: Files{OutputDir: outputDir},
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
