package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from an empty directory so no config file is picked up.
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.Equal(t, 0.5, cfg.Parser.ReconcileTolerance)
	assert.Equal(t, 0.01, cfg.Parser.MinRemainder)
	assert.Equal(t, 0.5, cfg.Parser.MinTotalCandidate)
	assert.Equal(t, 6, cfg.Parser.MerchantScanLines)
	assert.Equal(t, 3, cfg.Parser.MinItemLineLen)
	assert.Equal(t, 70, cfg.Parser.MaxItemLineLen)

	assert.Empty(t, cfg.Stores.File)

	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 10, cfg.AI.TimeoutSeconds)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RECEIPT_PARSER_MERCHANT_SCAN_LINES", "10")
	t.Setenv("RECEIPT_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Parser.MerchantScanLines)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfigGeminiKeyBinding(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"negative tolerance", func(c *Config) { c.Parser.ReconcileTolerance = -1 }, true},
		{"negative remainder", func(c *Config) { c.Parser.MinRemainder = -0.1 }, true},
		{"zero scan lines", func(c *Config) { c.Parser.MerchantScanLines = 0 }, true},
		{"inverted line bounds", func(c *Config) { c.Parser.MinItemLineLen = 80 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			cfg, err := InitializeConfig()
			require.NoError(t, err)

			tc.mutate(cfg)
			err = validateConfig(cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
