package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, HTTP server, database
// connection, probing, scheduling and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures the optional rotating log file written next to stderr output
	Log struct {
		// File is the path of the JSON log file. Empty disables file logging
		File string `env:"LOG_FILE" yaml:"file"`
		// MaxSizeMB is the size in megabytes at which the log file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"100" yaml:"maxSizeMb"`
		// MaxBackups is the number of rotated files to keep
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3" yaml:"maxBackups"`
		// MaxAgeDays is the number of days rotated files are kept
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"28" yaml:"maxAgeDays"`
		// Compress enables gzip compression of rotated files
		Compress bool `env:"LOG_COMPRESS" env-default:"false" yaml:"compress"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the browser origins allowed to call the API
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost" env-separator:"," yaml:"allowedOrigins"` //nolint: lll
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Driver selects the storage engine: "postgres" or "sqlite"
		Driver string `env:"DATABASE_DRIVER" env-default:"postgres" yaml:"driver"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"uptime" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// SQLitePath is the database file used by the sqlite driver. Empty keeps the database in memory
		SQLitePath string `env:"DATABASE_SQLITE_PATH" env-default:"uptime.db" yaml:"sqlitePath"`
	} `yaml:"database"`

	// Prober configures the HTTP checks issued against registered domains
	Prober struct {
		// Timeout bounds a single probe
		Timeout time.Duration `env:"PROBER_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// UserAgent is sent with every probe
		UserAgent string `env:"PROBER_USER_AGENT" env-default:"uptime-monitor/1.0" yaml:"userAgent"`
		// MaxBodyBytes caps how much of a response body is read before the connection is released
		MaxBodyBytes int64 `env:"PROBER_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
	} `yaml:"prober"`

	// Scheduler configures the periodic sweep over all registered domains
	Scheduler struct {
		// Interval is the pause between the end of one sweep and the start of the next
		Interval time.Duration `env:"SCHEDULER_INTERVAL" env-default:"5m" yaml:"interval"`
		// MaxConcurrentProbes caps probes in flight during a sweep. Zero means one per domain
		MaxConcurrentProbes int `env:"SCHEDULER_MAX_CONCURRENT_PROBES" env-default:"0" yaml:"maxConcurrentProbes"`
	} `yaml:"scheduler"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
