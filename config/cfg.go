package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-newsletter/internal/api/http"
	"github.com/jekabolt/grbpwr-newsletter/internal/mail"
	"github.com/jekabolt/grbpwr-newsletter/internal/store"
	"github.com/jekabolt/grbpwr-newsletter/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB     store.Config   `mapstructure:"database"`
	Logger log.Config     `mapstructure:"logger"`
	HTTP   httpapi.Config `mapstructure:"http"`
	Mailer mail.Config    `mapstructure:"mailer"`
}

// Validate reports every invalid section at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.DB.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if c.HTTP.Port == "" {
		errs = append(errs, errors.New("http: port is required"))
	}
	if c.Mailer.SendWelcome {
		if err := c.Mailer.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("mailer: %w", err))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g. DATABASE__HOST for database.host
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/newsletter")
		v.AddConfigPath("/etc/newsletter")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database_name", "newsletter")
	v.SetDefault("database.require_ssl", false)
	v.SetDefault("database.automigrate", true)
	v.SetDefault("database.max_open_connections", 10)
	v.SetDefault("database.max_idle_connections", 5)

	v.SetDefault("logger.level", 0)

	v.SetDefault("http.port", "8000")
	v.SetDefault("http.address", "127.0.0.1")
	v.SetDefault("http.read_header_timeout", "5s")
	v.SetDefault("http.shutdown_timeout", "10s")

	v.SetDefault("mailer.base_url", "https://api.sendgrid.com")
	v.SetDefault("mailer.timeout", "10s")
	v.SetDefault("mailer.send_welcome", false)
}

// bindEnvVars binds flat env var names next to the nested ones.
func bindEnvVars(v *viper.Viper) {
	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.username", "DATABASE_USERNAME")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.database_name", "DATABASE_NAME")
	v.BindEnv("database.require_ssl", "DATABASE_REQUIRE_SSL")
	v.BindEnv("database.automigrate", "DATABASE_AUTOMIGRATE")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Mailer
	v.BindEnv("mailer.api_key", "MAILER_API_KEY")
	v.BindEnv("mailer.base_url", "MAILER_BASE_URL")
	v.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	v.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	v.BindEnv("mailer.send_welcome", "MAILER_SEND_WELCOME")
}
