package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig represents a .codelens.yaml file in a repository. It
// controls which files a batch review covers and how results are reported.
type ProjectConfig struct {
	Version string `yaml:"version"`

	// File patterns (doublestar globs, relative to the repo root)
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// Scoring preferences
	Scoring ScoringConfig `yaml:"scoring,omitempty"`

	// Reporting preferences
	Report ReportConfig `yaml:"report,omitempty"`
}

// ScoringConfig holds model preferences for the LLM scorer
type ScoringConfig struct {
	// Model to request from the provider
	Model string `yaml:"model,omitempty"`

	// Skip LLM scoring entirely; index facts only
	IndexOnly bool `yaml:"index_only,omitempty"`
}

// ReportConfig holds report output preferences
type ReportConfig struct {
	// Save per-file JSON results alongside the summary
	SaveResults bool `yaml:"save_results,omitempty"`

	// Directory for result files
	OutputDir string `yaml:"output_dir,omitempty"`
}

// DefaultProjectConfig returns the configuration used when no
// .codelens.yaml exists
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Version: "1.0",
		Include: []string{"**/*.py", "**/*.js", "**/*.jsx"},
		Exclude: []string{"**/node_modules/**", "**/.git/**", "**/venv/**"},
	}
}

// LoadProjectConfig reads .codelens.yaml from the given directory,
// falling back to defaults when the file does not exist
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	path := filepath.Join(dir, ".codelens.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
