package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Printavo PrintavoConfig
	Browser  BrowserConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PrintavoConfig holds destination API configuration. Credentials are not
// configured here — the operator supplies them per request.
type PrintavoConfig struct {
	BaseURL           string  `mapstructure:"base_url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// BrowserConfig holds headless browser configuration
type BrowserConfig struct {
	ExecPath    string        `mapstructure:"exec_path"`
	UserAgent   string        `mapstructure:"user_agent"`
	NavTimeout  time.Duration `mapstructure:"nav_timeout"`
	SettleDelay time.Duration `mapstructure:"settle_delay"`
	Headless    bool          `mapstructure:"headless"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/printbridge/")

	// Environment variable settings
	v.SetEnvPrefix("PRINTBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Printavo defaults
	v.SetDefault("printavo.base_url", "https://www.printavo.com/api/v1")
	v.SetDefault("printavo.requests_per_second", 2.0)

	// Browser defaults
	v.SetDefault("browser.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	v.SetDefault("browser.nav_timeout", "30s")
	v.SetDefault("browser.settle_delay", "3s")
	v.SetDefault("browser.headless", true)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Printavo.BaseURL == "" {
		return fmt.Errorf("printavo base URL is required (set PRINTBRIDGE_PRINTAVO_BASE_URL)")
	}

	if config.Printavo.RequestsPerSecond <= 0 {
		return fmt.Errorf("printavo requests_per_second must be positive, got: %v", config.Printavo.RequestsPerSecond)
	}

	if config.Browser.NavTimeout <= 0 {
		return fmt.Errorf("browser nav_timeout must be positive, got: %v", config.Browser.NavTimeout)
	}

	if config.Browser.SettleDelay < 0 {
		return fmt.Errorf("browser settle_delay must not be negative, got: %v", config.Browser.SettleDelay)
	}

	return nil
}
