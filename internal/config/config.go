package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values come from a YAML file and can be overridden by environment variables.
type Config struct {
	// Environment selects the logger flavor (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"travel" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"travel" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"travel" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	Media struct {
		// Root is the directory holding uploaded images and thumbnails.
		Root string `env:"MEDIA_ROOT" env-default:"media" yaml:"root"`
		// HostPrefix is prepended to stored paths to build public URLs.
		HostPrefix         string `env:"MEDIA_HOST_PREFIX" env-default:"http://127.0.0.1:8000/media/" yaml:"hostPrefix"`
		ThumbnailMaxWidth  int    `env:"MEDIA_THUMBNAIL_MAX_WIDTH" env-default:"300" yaml:"thumbnailMaxWidth"`
		ThumbnailMaxHeight int    `env:"MEDIA_THUMBNAIL_MAX_HEIGHT" env-default:"200" yaml:"thumbnailMaxHeight"`
		ThumbnailQuality   int    `env:"MEDIA_THUMBNAIL_QUALITY" env-default:"85" yaml:"thumbnailQuality"`
	} `yaml:"media"`

	Worker struct {
		// MaxWorkers is the number of thumbnail jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a failing thumbnail job is tried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// JobTimeout bounds a single thumbnail job
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"1m" yaml:"jobTimeout"`
		// BackfillBatchSize is the number of records the backfill command enqueues per kind
		BackfillBatchSize uint `env:"WORKER_BACKFILL_BATCH_SIZE" env-default:"500" yaml:"backfillBatchSize"`
	} `yaml:"worker"`

	Metrics struct {
		// Addr is where the metrics and health endpoints listen
		Addr string `env:"METRICS_ADDR" env-default:":9090" yaml:"addr"`
		// Path defines the URL path where metrics are exposed
		Path string `env:"METRICS_PATH" env-default:"/metrics" yaml:"path"`
		// Pprof exposes net/http/pprof next to the metrics
		Pprof bool `env:"METRICS_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"metrics"`

	// GracefulShutdownTimeout is the maximum duration to wait for running jobs to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath and applies environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
