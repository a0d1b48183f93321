package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Metadata   MetadataConfig   `json:"metadata"`
	QR         QRConfig         `json:"qr"`
	Auth       AuthConfig       `json:"auth"`
	Pagination PaginationConfig `json:"pagination"`
	Redis      RedisConfig      `json:"redis"`
	Logging    LoggingConfig    `json:"logging"`
	HTTP       HTTPConfig       `json:"http"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	URL               string        `json:"database_url" env:"DATABASE_URL"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type RateLimitConfig struct {
	// Per-client fixed window for the metadata endpoint.
	WindowSize  time.Duration `json:"window_size" env:"RATE_LIMIT_WINDOW_SIZE" default:"60s"`
	MaxRequests int           `json:"max_requests" env:"RATE_LIMIT_MAX_REQUESTS" default:"10"`

	// Minimum spacing between outbound fetches to the same host.
	HostInterval time.Duration `json:"host_interval" env:"RATE_LIMIT_HOST_INTERVAL" default:"5s"`

	DOSProtection DOSProtectionConfig `json:"dos_protection"`
}

type DOSProtectionConfig struct {
	Enabled    bool          `json:"enabled" env:"DOS_PROTECTION_ENABLED" default:"true"`
	RateLimit  int           `json:"rate_limit" env:"DOS_PROTECTION_RATE_LIMIT" default:"100"`
	BurstLimit int           `json:"burst_limit" env:"DOS_PROTECTION_BURST_LIMIT" default:"200"`
	WindowSize time.Duration `json:"window_size" env:"DOS_PROTECTION_WINDOW_SIZE" default:"1m"`
}

type MetadataConfig struct {
	FetchTimeout   time.Duration `json:"fetch_timeout" env:"METADATA_FETCH_TIMEOUT" default:"5s"`
	MaxContentSize int64         `json:"max_content_size" env:"METADATA_MAX_CONTENT_SIZE" default:"2097152"`
	UserAgent      string        `json:"user_agent" env:"METADATA_USER_AGENT" default:"SafeQR/1.0 (+https://safeqr.app)"`
}

type QRConfig struct {
	ImageSize int `json:"image_size" env:"QR_IMAGE_SIZE" default:"240"`
}

type AuthConfig struct {
	ProviderURL       string        `json:"provider_url" env:"AUTH_PROVIDER_URL"`
	ProviderAPIKey    string        `json:"-" env:"AUTH_PROVIDER_API_KEY"`
	CallbackURL       string        `json:"callback_url" env:"AUTH_CALLBACK_URL" default:"http://localhost:9000/auth/callback"`
	SessionSecret     string        `json:"-" env:"AUTH_SESSION_SECRET"`
	SessionSecretFile string        `json:"-" env:"AUTH_SESSION_SECRET_FILE"`
	SessionCookieName string        `json:"session_cookie_name" env:"AUTH_SESSION_COOKIE_NAME" default:"safeqr_session"`
	SessionTTL        time.Duration `json:"session_ttl" env:"AUTH_SESSION_TTL" default:"168h"`
}

type PaginationConfig struct {
	ItemsPerPage int `json:"items_per_page" env:"PAGINATION_ITEMS_PER_PAGE" default:"20"`
}

type RedisConfig struct {
	// Addr left empty keeps rate limit state in process memory.
	Addr     string `json:"addr" env:"REDIS_ADDR"`
	Password string `json:"-" env:"REDIS_PASSWORD"`
	DB       int    `json:"db" env:"REDIS_DB" default:"0"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load session secret from file if configured (Docker Secrets support)
	if config.Auth.SessionSecretFile != "" {
		content, err := os.ReadFile(config.Auth.SessionSecretFile)
		if err == nil {
			config.Auth.SessionSecret = strings.TrimSpace(string(content))
		}
		// If file read fails, we fall back to the env var value (if any) or keep it empty
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
