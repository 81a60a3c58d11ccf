package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backends,
// upstream integrations, auto-fix policy and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default minimum log level
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

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
		// CORSOrigins lists the allowed origins; "*" allows any
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
		// StaticDir holds the built web client. Empty disables SPA serving.
		StaticDir string `env:"HTTP_STATIC_DIR" env-default:"" yaml:"staticDir"`
		// MaxBodyBytes caps request bodies, webhooks included
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"5242880" yaml:"maxBodyBytes"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"autobuilder" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis backs the API rate limiter and is reported by the health checks
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
	} `yaml:"redis"`

	// JWT holds the RS256 keys used to verify API tokens and to mint new ones
	JWT struct {
		// PublicKey is the PEM encoded RSA public key
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key, only needed by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of minted tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"720h" yaml:"ttl"`
	} `yaml:"jwt"`

	GitHub struct {
		// WebhookSecret is the global secret used to verify webhook deliveries
		WebhookSecret string `env:"GITHUB_WEBHOOK_SECRET" env-default:"" yaml:"webhookSecret"`
		// Token authenticates repository sync, workflow dispatch and fix pull requests
		Token string `env:"GITHUB_TOKEN" env-default:"" yaml:"token"`
		// WebhookURL is the public callback registered on linked repositories
		WebhookURL string `env:"GITHUB_WEBHOOK_URL" env-default:"" yaml:"webhookUrl"`
		// BaseURL points to a GitHub Enterprise API. Empty uses api.github.com.
		BaseURL string `env:"GITHUB_BASE_URL" env-default:"" yaml:"baseUrl"`
	} `yaml:"github"`

	Codemagic struct {
		Token   string `env:"CODEMAGIC_TOKEN" env-default:"" yaml:"token"`
		BaseURL string `env:"CODEMAGIC_BASE_URL" env-default:"https://api.codemagic.io" yaml:"baseUrl"`
	} `yaml:"codemagic"`

	Slack struct {
		// WebhookURL enables notifications when set
		WebhookURL string `env:"SLACK_WEBHOOK_URL" env-default:"" yaml:"webhookUrl"`
		Channel    string `env:"SLACK_CHANNEL" env-default:"" yaml:"channel"`
	} `yaml:"slack"`

	Sentry struct {
		DSN string `env:"SENTRY_DSN" env-default:"" yaml:"dsn"`
	} `yaml:"sentry"`

	Security struct {
		// SecretKey derives the key that encrypts integration tokens at rest
		SecretKey string `env:"SECRET_KEY" env-default:"change-me" yaml:"secretKey"`
		// HSTS toggles the Strict-Transport-Security header
		HSTS bool `env:"SECURITY_HSTS" env-default:"true" yaml:"hsts"`
	} `yaml:"security"`

	RateLimit struct {
		Enabled bool `env:"RATE_LIMIT_ENABLED" env-default:"true" yaml:"enabled"`
		PerHour int  `env:"RATE_LIMIT_PER_HOUR" env-default:"100" yaml:"perHour"`
		PerDay  int  `env:"RATE_LIMIT_PER_DAY" env-default:"1000" yaml:"perDay"`
	} `yaml:"rateLimit"`

	AutoFix struct {
		// MaxAttempts bounds fix attempts per build and the retry chain depth
		MaxAttempts int `env:"AUTO_FIX_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// SafeFileTypes are the file extensions a safe-only repository allows fixes to touch
		SafeFileTypes []string `env:"AUTO_FIX_SAFE_FILE_TYPES" env-default:".json,.yml,.yaml,.txt,.md,.gradle,.properties,.toml" env-separator:"," yaml:"safeFileTypes"` //nolint: lll
		// PrimaryBranch is the default branch assigned to new repositories
		PrimaryBranch string `env:"AUTO_FIX_PRIMARY_BRANCH" env-default:"main" yaml:"primaryBranch"`
	} `yaml:"autoFix"`

	Builds struct {
		// TriggerMaxAttempts is how many times a trigger job is retried by the queue
		TriggerMaxAttempts int `env:"BUILDS_TRIGGER_MAX_ATTEMPTS" env-default:"5" yaml:"triggerMaxAttempts"`
		// MonitorInterval is how long a monitor job waits between status polls
		MonitorInterval time.Duration `env:"BUILDS_MONITOR_INTERVAL" env-default:"30s" yaml:"monitorInterval"`
		// CleanupAfter is the age after which successful builds are deleted
		CleanupAfter time.Duration `env:"BUILDS_CLEANUP_AFTER" env-default:"720h" yaml:"cleanupAfter"`
		// Timeout is how long a build may run before it is marked timed out
		Timeout time.Duration `env:"BUILDS_TIMEOUT" env-default:"2h" yaml:"timeout"`
		// LogLimit caps the log bytes kept per build
		LogLimit int `env:"BUILDS_LOG_LIMIT" env-default:"1048576" yaml:"logLimit"`
	} `yaml:"builds"`

	Worker struct {
		// MaxWorkers is the queue concurrency
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
