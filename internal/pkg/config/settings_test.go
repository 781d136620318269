//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: "sqlite",
				DSN:  "boathouse.db",
			},
			expectedError: false,
		},
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: "postgres",
				DSN:  "host=localhost user=boathouse password=secret",
				Name: "boathouse",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "boathouse.db",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type: "postgres",
			},
			expectedError: true,
		},
		{
			name:          "empty fields",
			settings:      &DatabaseSettings{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name: "valid console settings",
			settings: &LoggerSettings{
				LogLevel: "info",
				LogType:  "console",
			},
			expectedError: false,
		},
		{
			name: "valid file settings",
			settings: &LoggerSettings{
				LogLevel:   "debug",
				LogType:    "file",
				FilePath:   "boathouse.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     30,
			},
			expectedError: false,
		},
		{
			name: "unknown level",
			settings: &LoggerSettings{
				LogLevel: "verbose",
				LogType:  "console",
			},
			expectedError: true,
		},
		{
			name: "file logger without path",
			settings: &LoggerSettings{
				LogLevel: "info",
				LogType:  "file",
			},
			expectedError: true,
		},
		{
			name: "file logger with out of range rotation",
			settings: &LoggerSettings{
				LogLevel:   "info",
				LogType:    "file",
				FilePath:   "boathouse.log",
				MaxSize:    500,
				MaxBackups: 3,
				MaxAge:     30,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServerConfigValidation(t *testing.T) {
	cfg := &ServerConfig{
		Logger:   LoggerSettings{LogLevel: "info", LogType: "console"},
		Database: DatabaseSettings{Type: "sqlite", DSN: ":memory:"},
		Server:   ServerSettings{Port: "8080"},
		Club:     ClubSettings{ID: "lmrc", Name: "Lake Macquarie Rowing Club"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = ""
	require.Error(t, cfg.Validate())
}
