// ABOUTME: Configuration loader for the facerec CLI
// ABOUTME: Loads settings from .env, environment variables, and defaults

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the CLI's environment variables
const EnvPrefix = "FACEREC"

// DefaultAPIURL is where the reference Flask service listens
const DefaultAPIURL = "http://localhost:5000"

type Config struct {
	// Backend
	APIURL  string        `validate:"required,http_url"`
	Timeout time.Duration `validate:"gt=0"` // per-request timeout (default 30s)

	// Simulation
	Concurrency int `validate:"gte=0"` // max in-flight requests for batch runs, 0 = unlimited

	// Logging
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=text json"`

	// Local state (TUI debug log)
	ConfigDir string
}

// envNames maps struct fields to the variables users set
var envNames = map[string]string{
	"APIURL":      "FACEREC_API_URL",
	"Timeout":     "FACEREC_TIMEOUT",
	"Concurrency": "FACEREC_CONCURRENCY",
	"LogLevel":    "LOG_LEVEL",
	"LogFormat":   "LOG_FORMAT",
}

// Load reads ./.env if present, then the environment
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the given dotenv file if present, then the environment.
// Variables already set in the environment take precedence over the file.
func LoadFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LOG_FORMAT")

	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("timeout", "30s")
	v.SetDefault("concurrency", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("config_dir", defaultConfigDir())

	cfg := &Config{
		APIURL:      NormalizeURL(v.GetString("api_url")),
		Timeout:     v.GetDuration("timeout"),
		Concurrency: v.GetInt("concurrency"),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		LogFormat:   strings.ToLower(v.GetString("log_format")),
		ConfigDir:   v.GetString("config_dir"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and names the offending variable
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := envNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		return fmt.Errorf("%s is invalid: %v fails %q", name, fe.Value(), fe.Tag())
	}
	return fmt.Errorf("invalid configuration: %w", err)
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".facerec")
}

// NormalizeURL drops trailing slashes and adds http:// when no scheme is given
func NormalizeURL(url string) string {
	return ensureScheme(strings.TrimRight(url, "/"))
}

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "http://" + url
	}
	return url
}
