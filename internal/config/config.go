package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Notice is an operational notice shown on the dashboard. Notices are
// configuration data, not derived from the database.
type Notice struct {
	Title    string `yaml:"title"`
	Tag      string `yaml:"tag"`
	TagColor string `yaml:"tag_color"`
	Time     string `yaml:"time"`
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host"`
		Port            string `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		DBName          string `yaml:"dbname"`
		SSLMode         string `yaml:"sslmode"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Session struct {
		CookieName string `yaml:"cookie_name"`
		TTL        string `yaml:"ttl"`
	} `yaml:"session"`

	Auth struct {
		ResetTokenSecret string `yaml:"reset_token_secret"`
		ResetTokenExpiry string `yaml:"reset_token_expiry"`
		Issuer           string `yaml:"issuer"`
	} `yaml:"auth"`

	Seed struct {
		AdminEmail    string `yaml:"admin_email"`
		AdminPassword string `yaml:"admin_password"`
		AdminName     string `yaml:"admin_name"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Dashboard struct {
		Notices []Notice `yaml:"notices"`
	} `yaml:"dashboard"`
}

// LoadConfig loads configuration from a file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "registrar"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Session.CookieName = "registrar_session"
	config.Session.TTL = "24h"

	config.Auth.ResetTokenExpiry = "1h"
	config.Auth.Issuer = "registrar.app"

	config.Seed.AdminEmail = "admin@registrar.local"
	config.Seed.AdminPassword = "admin123"
	config.Seed.AdminName = "Administrator"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables.
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)

	config.Database.Host = GetEnv("DB_HOST", config.Database.Host)
	config.Database.Port = GetEnv("DB_PORT", config.Database.Port)
	config.Database.User = GetEnv("DB_USER", config.Database.User)
	config.Database.Password = GetEnv("DB_PASSWORD", config.Database.Password)
	config.Database.DBName = GetEnv("DB_NAME", config.Database.DBName)
	config.Database.SSLMode = GetEnv("DB_SSLMODE", config.Database.SSLMode)

	config.Session.CookieName = GetEnv("SESSION_COOKIE_NAME", config.Session.CookieName)
	config.Session.TTL = GetEnv("SESSION_TTL", config.Session.TTL)

	config.Auth.ResetTokenSecret = GetEnv("RESET_TOKEN_SECRET", config.Auth.ResetTokenSecret)
	config.Auth.ResetTokenExpiry = GetEnv("RESET_TOKEN_EXPIRY", config.Auth.ResetTokenExpiry)

	config.Seed.AdminEmail = GetEnv("SEED_ADMIN_EMAIL", config.Seed.AdminEmail)
	config.Seed.AdminPassword = GetEnv("SEED_ADMIN_PASSWORD", config.Seed.AdminPassword)

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid.
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Auth.ResetTokenSecret == "" {
		return fmt.Errorf("reset token secret is required")
	}

	if _, err := time.ParseDuration(config.Session.TTL); err != nil {
		return fmt.Errorf("invalid session TTL format: %w", err)
	}

	if _, err := time.ParseDuration(config.Auth.ResetTokenExpiry); err != nil {
		return fmt.Errorf("invalid reset token expiry format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value.
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
