package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
//
// The parser thresholds are deliberate knobs rather than literals: the source
// heuristics carry undocumented constants (0.5 reconciliation tolerance, 0.5
// total-candidate floor) and exposing them keeps the defaults inspectable
// without changing behavior.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parser struct {
		// ReconcileTolerance is the maximum accepted gap between the summed
		// item prices and the extracted total before a corrective entry is added.
		ReconcileTolerance float64 `mapstructure:"reconcile_tolerance" yaml:"reconcile_tolerance"`
		// MinRemainder is the smallest corrective entry worth recording.
		MinRemainder float64 `mapstructure:"min_remainder" yaml:"min_remainder"`
		// MinTotalCandidate filters out quantities and tiny line prices when
		// falling back to the largest money token as the total.
		MinTotalCandidate float64 `mapstructure:"min_total_candidate" yaml:"min_total_candidate"`
		// MerchantScanLines is how many leading lines are considered when
		// looking for the merchant name.
		MerchantScanLines int `mapstructure:"merchant_scan_lines" yaml:"merchant_scan_lines"`
		// MinItemLineLen and MaxItemLineLen bound the length of a line that can
		// still be a plausible item description.
		MinItemLineLen int `mapstructure:"min_item_line_len" yaml:"min_item_line_len"`
		MaxItemLineLen int `mapstructure:"max_item_line_len" yaml:"max_item_line_len"`
	} `mapstructure:"parser" yaml:"parser"`

	Stores struct {
		// File optionally replaces the built-in store-category table.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"stores" yaml:"stores"`

	AI struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Model            string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
		APIKey           string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then RECEIPT_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.receipt-csv")
	v.AddConfigPath(".receipt-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECEIPT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// Config file not found is fine, defaults and env vars apply.
	}

	// The API key always comes from an unprefixed environment variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		Logger.Warnf("failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. The parser defaults mirror
// the original heuristics and must not change without recategorizing existing
// records.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("parser.reconcile_tolerance", 0.5)
	v.SetDefault("parser.min_remainder", 0.01)
	v.SetDefault("parser.min_total_candidate", 0.5)
	v.SetDefault("parser.merchant_scan_lines", 6)
	v.SetDefault("parser.min_item_line_len", 3)
	v.SetDefault("parser.max_item_line_len", 70)

	v.SetDefault("stores.file", "")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 10)
	v.SetDefault("ai.fallback_category", "General")
}

func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[config.Log.Level] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}
	if config.Parser.ReconcileTolerance < 0 {
		return fmt.Errorf("reconcile_tolerance must be non-negative")
	}
	if config.Parser.MinRemainder < 0 {
		return fmt.Errorf("min_remainder must be non-negative")
	}
	if config.Parser.MerchantScanLines <= 0 {
		return fmt.Errorf("merchant_scan_lines must be positive")
	}
	if config.Parser.MinItemLineLen < 0 || config.Parser.MaxItemLineLen < config.Parser.MinItemLineLen {
		return fmt.Errorf("item line length bounds are inconsistent")
	}
	return nil
}
