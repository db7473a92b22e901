package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// SMTPConfig holds the transactional mail transport settings.
// An empty Host means mail delivery is logged instead of sent.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type Config struct {
	Port        int        `mapstructure:"port"`
	MongoURI    string     `mapstructure:"mongoUri"`
	DBName      string     `mapstructure:"dbName"`
	JWTSecret   string     `mapstructure:"jwtSecret"`
	ClientURL   string     `mapstructure:"clientUrl"`
	Environment string     `mapstructure:"environment"`
	SMTP        SMTPConfig `mapstructure:"smtp"`
}

// IsProduction reports whether the process runs in production mode.
// It controls the Secure attribute on session cookies.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig loads the configuration from file and environment variables.
// Environment variables use the IDENTITY_ prefix with dots replaced by
// underscores (e.g. IDENTITY_SMTP_HOST).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("IDENTITY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key so environment variables bind even without a file.
	v.SetDefault("port", 5000)
	v.SetDefault("mongoUri", "")
	v.SetDefault("dbName", "identity")
	v.SetDefault("jwtSecret", "")
	v.SetDefault("clientUrl", "")
	v.SetDefault("environment", "development")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "no-reply@localhost")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !strings.Contains(err.Error(), "no such file") {
			return nil, err
		}
		log.Printf("Warning: could not read config file %s, using defaults and environment variables", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("config: mongoUri is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: jwtSecret is required")
	}
	if cfg.ClientURL == "" {
		return nil, errors.New("config: clientUrl is required")
	}

	return &cfg, nil
}
