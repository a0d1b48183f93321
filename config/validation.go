package config

import (
	"fmt"
	"strings"
	"time"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateMetadataConfig(&config.Metadata); err != nil {
		return fmt.Errorf("metadata config validation failed: %w", err)
	}

	if err := validateQRConfig(&config.QR); err != nil {
		return fmt.Errorf("QR config validation failed: %w", err)
	}

	if err := validatePaginationConfig(&config.Pagination); err != nil {
		return fmt.Errorf("pagination config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.WindowSize < time.Second {
		return fmt.Errorf("window size must be at least 1 second, got %v", config.WindowSize)
	}

	if config.MaxRequests < 1 {
		return fmt.Errorf("max requests must be at least 1, got %d", config.MaxRequests)
	}

	if config.HostInterval < time.Second {
		return fmt.Errorf("host interval must be at least 1 second, got %v", config.HostInterval)
	}

	if err := validateDOSProtectionConfig(&config.DOSProtection); err != nil {
		return fmt.Errorf("DOS protection config validation failed: %w", err)
	}

	return nil
}

func validateMetadataConfig(config *MetadataConfig) error {
	if config.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.FetchTimeout)
	}

	if config.MaxContentSize < 1 {
		return fmt.Errorf("max content size must be at least 1 byte, got %d", config.MaxContentSize)
	}

	if strings.TrimSpace(config.UserAgent) == "" {
		return fmt.Errorf("user agent must be provided")
	}

	return nil
}

func validateQRConfig(config *QRConfig) error {
	if config.ImageSize < 21 {
		return fmt.Errorf("image size must be at least 21 pixels, got %d", config.ImageSize)
	}

	return nil
}

func validatePaginationConfig(config *PaginationConfig) error {
	if config.ItemsPerPage < 1 {
		return fmt.Errorf("items per page must be at least 1, got %d", config.ItemsPerPage)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)

	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log level must be one of: %s, got %s",
			strings.Join(validLevels, ", "), config.Level)
	}

	validFormats := []string{"json", "text"}
	format := strings.ToLower(config.Format)

	valid = false
	for _, validFormat := range validFormats {
		if format == validFormat {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log format must be one of: %s, got %s",
			strings.Join(validFormats, ", "), config.Format)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.DialTimeout <= 0 {
		return fmt.Errorf("dial timeout must be positive, got %v", config.DialTimeout)
	}

	if config.TLSHandshakeTimeout <= 0 {
		return fmt.Errorf("TLS handshake timeout must be positive, got %v", config.TLSHandshakeTimeout)
	}

	if config.IdleConnTimeout <= 0 {
		return fmt.Errorf("idle connection timeout must be positive, got %v", config.IdleConnTimeout)
	}

	return nil
}

func validateDOSProtectionConfig(config *DOSProtectionConfig) error {
	// Skip validation if DOS protection is disabled
	if !config.Enabled {
		return nil
	}

	if config.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be greater than 0, got %d", config.RateLimit)
	}

	if config.BurstLimit <= 0 {
		return fmt.Errorf("burst limit must be greater than 0, got %d", config.BurstLimit)
	}

	if config.BurstLimit < config.RateLimit {
		return fmt.Errorf("burst limit must be >= rate limit, got burst: %d, rate: %d",
			config.BurstLimit, config.RateLimit)
	}

	if config.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %v", config.WindowSize)
	}

	return nil
}
