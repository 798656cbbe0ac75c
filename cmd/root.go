// ABOUTME: Root command for facerec CLI
// ABOUTME: Handles global flags, configuration, and logging setup

package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/markalston/facerec-auth/internal/authsim"
	"github.com/markalston/facerec-auth/internal/client"
	"github.com/markalston/facerec-auth/internal/config"
	"github.com/markalston/facerec-auth/internal/logger"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
	logLevel   string
	logFormat  string

	// cfg is populated by the root PersistentPreRunE
	cfg *config.Config
)

const defaultTimeout = 30 * time.Second

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "facerec",
	Short: "CLI for the Facial Recognition authentication service",
	Long: `facerec simulates facial recognition authentication events against the
authentication service and renders the verdict.

Environment Variables:
  FACEREC_API_URL      Service URL (default: http://localhost:5000)
  FACEREC_TIMEOUT      Request timeout (default: 30s)
  FACEREC_CONCURRENCY  Max in-flight requests for simulate (default: 0, unlimited)
  FACEREC_CONFIG_DIR   Directory for debug.log (default: ~/.facerec)
  LOG_LEVEL            debug, info, warn, error (default: info)
  LOG_FORMAT           text, json (default: text)

A .env file in the working directory is read if present.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logger.Init(os.Stderr, getLogLevel(), getLogFormat())
		authsim.Announce(slog.Default())
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Service URL (overrides FACEREC_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of rendered results")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (overrides LOG_FORMAT)")
}

// GetAPIURL returns the API URL from flag, config, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return config.NormalizeURL(apiURL)
	}
	if cfg != nil {
		return cfg.APIURL
	}
	if envURL := os.Getenv("FACEREC_API_URL"); envURL != "" {
		return config.NormalizeURL(envURL)
	}
	return config.DefaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

func getLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	if cfg != nil {
		return cfg.LogLevel
	}
	return "info"
}

func getLogFormat() string {
	if logFormat != "" {
		return logFormat
	}
	if cfg != nil {
		return cfg.LogFormat
	}
	return "text"
}

func getTimeout() time.Duration {
	if cfg != nil {
		return cfg.Timeout
	}
	return defaultTimeout
}

func getConfigDir() string {
	if cfg != nil {
		return cfg.ConfigDir
	}
	return ""
}

// newClient builds an API client from the resolved settings
func newClient() *client.Client {
	return client.New(GetAPIURL(), client.WithTimeout(getTimeout()))
}
