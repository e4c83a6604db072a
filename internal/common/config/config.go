// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Interview InterviewConfig `mapstructure:"interview"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Server    ServerConfig    `mapstructure:"server"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig holds settings for the remote interview API.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds, transport-level
	SearchTimeout  int    `mapstructure:"search_timeout"`  // milliseconds, job-search cap
}

// GetRequestTimeout returns the transport timeout as a duration.
func (a APIConfig) GetRequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeout) * time.Millisecond
}

// GetSearchTimeout returns the job-search upper bound as a duration.
func (a APIConfig) GetSearchTimeout() time.Duration {
	return time.Duration(a.SearchTimeout) * time.Millisecond
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// InterviewConfig holds the retry settings for the feedback endpoints.
type InterviewConfig struct {
	MaxRetries   int `mapstructure:"max_retries"`
	RetryDelayMS int `mapstructure:"retry_delay_ms"`
}

// GetRetryDelay returns the fixed inter-attempt delay as a duration.
func (i InterviewConfig) GetRetryDelay() time.Duration {
	return time.Duration(i.RetryDelayMS) * time.Millisecond
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds the health/metrics HTTP listener settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}
