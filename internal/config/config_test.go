package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"content_type": "email",
		"target_audience": "b2b",
		"max_concurrency": 4,
		"timeout_seconds": 30,
		"output_format": "json",
		"enforce_brand_voice": false,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "email", cfg.ContentType)
	assert.Equal(t, "b2b", cfg.TargetAudience)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "json", cfg.OutputFormat)
	require.NotNil(t, cfg.EnforceBrandVoice)
	assert.False(t, *cfg.EnforceBrandVoice)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"valid limits", Config{MaxConcurrency: 8, TimeoutSeconds: 60, OutputFormat: "text"}, false},
		{"concurrency too high", Config{MaxConcurrency: 64}, true},
		{"timeout too high", Config{TimeoutSeconds: 900}, true},
		{"bad output format", Config{OutputFormat: "xml"}, true},
		{"missing brand file", Config{Brand: "/nonexistent/brand.json"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ExistingPaths(t *testing.T) {
	dir := t.TempDir()
	brand := filepath.Join(dir, "brand.json")
	contentFile := filepath.Join(dir, "content.txt")
	require.NoError(t, os.WriteFile(brand, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(contentFile, []byte("hello"), 0644))

	cfg := Config{Brand: brand, Content: contentFile}
	assert.NoError(t, cfg.Validate())
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 45}
	assert.Equal(t, 45*time.Second, cfg.Timeout())

	assert.Equal(t, time.Duration(0), (&Config{}).Timeout())
}

func TestMergeWithDefaults(t *testing.T) {
	no := false
	defaults := Config{
		ContentType:       "blog",
		MaxConcurrency:    4,
		OutputFormat:      "text",
		EnforceBrandVoice: &no,
	}

	cfg := Config{ContentType: "email"}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "email", merged.ContentType, "explicit value wins")
	assert.Equal(t, 4, merged.MaxConcurrency)
	assert.Equal(t, "text", merged.OutputFormat)
	require.NotNil(t, merged.EnforceBrandVoice)
	assert.False(t, *merged.EnforceBrandVoice)
}
