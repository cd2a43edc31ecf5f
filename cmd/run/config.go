package run

import (
	"fmt"
	"time"
)

// DatastoreConfig defines the user directory the admin service authorizes
// against.
type DatastoreConfig struct {
	// Engine is the datastore engine to use ("memory" or "sqlite").
	Engine string
	// URI is the connection URI of the datastore. Ignored by the memory
	// engine.
	URI string
}

// HTTPConfig defines the configuration of the admin HTTP server.
type HTTPConfig struct {
	Addr string
	// UpstreamTimeout bounds the handling of a single admin request.
	UpstreamTimeout time.Duration
}

// LogConfig defines the configuration of the logging subsystem.
type LogConfig struct {
	// Format is either "text" or "json".
	Format string
	// Level is one of "none", "debug", "info", "warn", "error", "panic", "fatal".
	Level string
}

type Config struct {
	Datastore DatastoreConfig
	HTTP      HTTPConfig
	Log       LogConfig
}

// Verify checks the config for obvious misconfiguration so the server can
// refuse to start instead of misbehaving later.
func (cfg *Config) Verify() error {
	switch cfg.Datastore.Engine {
	case "memory":
	case "sqlite":
		if cfg.Datastore.URI == "" {
			return fmt.Errorf("config 'datastore.uri' is required for the sqlite engine")
		}
	default:
		return fmt.Errorf("config 'datastore.engine' must be one of ['memory', 'sqlite']")
	}

	if cfg.HTTP.Addr == "" {
		return fmt.Errorf("config 'http.addr' cannot be empty")
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json']")
	}

	switch cfg.Log.Level {
	case "none", "debug", "info", "warn", "error", "panic", "fatal":
	default:
		return fmt.Errorf("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error', 'panic', 'fatal']")
	}

	return nil
}

// DefaultConfig is the graphd admin service default configuration.
func DefaultConfig() *Config {
	return &Config{
		Datastore: DatastoreConfig{
			Engine: "memory",
		},
		HTTP: HTTPConfig{
			Addr:            "0.0.0.0:8080",
			UpstreamTimeout: 3 * time.Second,
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
	}
}
