// Package config provides functionality for loading and managing application
// configuration.
//
// Two shapes live here: ServerConfig, the ambient process settings (logging,
// database, HTTP server) loaded from a YAML file, and Config, the runtime
// integration configuration merged from a configuration source with
// documented defaults and validated before the application may trust it.
// Both are constructed once at startup and treated as immutable afterwards.
package config
