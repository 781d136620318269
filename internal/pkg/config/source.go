package config

import "os"

// Source is the override channel for runtime configuration. Environment
// variables are the usual implementation; files or secret managers can
// supply the same contract without touching the validation logic.
type Source interface {
	// Lookup returns the raw value for key and whether the source carries it.
	Lookup(key string) (string, bool)
}

type envSource struct{}

func (envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// EnvSource returns a Source backed by the process environment.
func EnvSource() Source {
	return envSource{}
}

// MapSource is an in-memory Source, used by tests and embedded defaults.
type MapSource map[string]string

// Lookup returns the value for key and whether the map carries it.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
