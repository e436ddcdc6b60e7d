package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LLM_DEFAULT_PROVIDER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "openai", cfg.LLM.DefaultProvider)
	assert.Equal(t, "gpt-4", cfg.LLM.OpenAIModel)
	assert.Equal(t, "temp_uploads", cfg.UploadDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("LLM_DEFAULT_PROVIDER", "anthropic")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "anthropic", cfg.LLM.DefaultProvider)
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"openai with key", LLMConfig{DefaultProvider: "openai", OpenAIKey: "sk-test"}, false},
		{"openai missing key", LLMConfig{DefaultProvider: "openai"}, true},
		{"anthropic with key", LLMConfig{DefaultProvider: "anthropic", AnthropicKey: "key"}, false},
		{"anthropic missing key", LLMConfig{DefaultProvider: "anthropic"}, true},
		{"unknown provider", LLMConfig{DefaultProvider: "mystery"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LLM: tt.cfg}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadProjectConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadProjectConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.Contains(t, cfg.Include, "**/*.py")
	assert.Contains(t, cfg.Exclude, "**/node_modules/**")
}

func TestLoadProjectConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `version: "2.0"
include:
  - "src/**/*.js"
scoring:
  model: gpt-4
  index_only: true
report:
  save_results: true
  output_dir: reports
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".codelens.yaml"), []byte(content), 0644))

	cfg, err := LoadProjectConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "2.0", cfg.Version)
	assert.Equal(t, []string{"src/**/*.js"}, cfg.Include)
	assert.Equal(t, "gpt-4", cfg.Scoring.Model)
	assert.True(t, cfg.Scoring.IndexOnly)
	assert.True(t, cfg.Report.SaveResults)
	assert.Equal(t, "reports", cfg.Report.OutputDir)
}

func TestLoadProjectConfig_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".codelens.yaml"), []byte(":\tnot yaml"), 0644))

	_, err := LoadProjectConfig(dir)
	assert.Error(t, err)
}
