package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig aggregates the ambient process settings read from a YAML
// file, with environment variables (BOATHOUSE_ prefix) taking precedence.
type ServerConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Server   ServerSettings   `mapstructure:"server"`
	Club     ClubSettings     `mapstructure:"club"`
}

// Validate checks every settings section.
func (c *ServerConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Club.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeServerConfig reads, unmarshals and validates the server
// configuration file at path.
func InitializeServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "boathouse.db")
	v.SetDefault("server.port", "8080")
	v.SetDefault("club.id", "lake-macquarie-rowing-club")
	v.SetDefault("club.name", "Lake Macquarie Rowing Club")

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v.SetEnvPrefix("BOATHOUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return &cfg, nil
}
