// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-spine-client application. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds run-mode settings such as the file for one-shot analysis.
	App App `envPrefix:"APP_"`

	// Adapter holds the analysis server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the destination of exported annotated images.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds run-mode settings.
type App struct {
	// InputFile, when set, switches the client to one-shot mode: the file is
	// analysed once and the result printed to stdout.
	// Env: APP_INPUT_FILE
	InputFile string `env:"INPUT_FILE"`
}

// Adapter holds settings of the outbound connection to the analysis server.
type Adapter struct {
	// HTTPAddress is the analysis server base address, either "host:port"
	// or a full URL (e.g. "https://spine.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	// Files holds the file-system settings for exported images.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for exported annotated images.
type Files struct {
	// OutputDir is the directory annotated images are saved to.
	// Env: STORAGE_FILES_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HealthInterval is how often the server health endpoint is polled
	// while the interactive UI runs.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// File is the rotating log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied before any other source.
const (
	DefaultHTTPAddress    = "localhost:8000"
	DefaultOutputDir      = "."
	DefaultHealthInterval = 30 * time.Second
	DefaultLogFile        = "spine-client.log"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
		Storage: Storage{Files: Files{OutputDir: DefaultOutputDir}},
		Workers: Workers{HealthInterval: DefaultHealthInterval},
		Log:     Log{File: DefaultLogFile, Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
