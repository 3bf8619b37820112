// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents settings that can be loaded from a JSON file. All
// fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	RefdataOverrides string `json:"refdata_overrides,omitempty"` // Path to a reference-data overrides JSON file

	// Behavior
	KeywordCount int  `json:"keyword_count,omitempty"` // Fixed keyword budget (0 = dynamic)
	Verbose      bool `json:"verbose,omitempty"`       // Print detailed box output

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Score weights (0 = use default)
	KeywordRelevanceWeight    float64 `json:"keyword_relevance_weight,omitempty"`
	SkillsQualityWeight       float64 `json:"skills_quality_weight,omitempty"`
	ExperienceAlignmentWeight float64 `json:"experience_alignment_weight,omitempty"`
	ContentQualityWeight      float64 `json:"content_quality_weight,omitempty"`
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.KeywordCount < 0 {
		return fmt.Errorf("config error: 'keyword_count' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	for name, w := range map[string]float64{
		"keyword_relevance_weight":    c.KeywordRelevanceWeight,
		"skills_quality_weight":       c.SkillsQualityWeight,
		"experience_alignment_weight": c.ExperienceAlignmentWeight,
		"content_quality_weight":      c.ContentQualityWeight,
	} {
		if w < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}
	if c.RefdataOverrides != "" {
		if _, err := os.Stat(c.RefdataOverrides); os.IsNotExist(err) {
			return fmt.Errorf("config error: overrides file not found: %s", c.RefdataOverrides)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. CLI flags should still win over the result for bools,
// since an unset bool is indistinguishable from false.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.RefdataOverrides == "" {
		result.RefdataOverrides = defaults.RefdataOverrides
	}
	if result.KeywordCount == 0 {
		result.KeywordCount = defaults.KeywordCount
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.KeywordRelevanceWeight == 0 {
		result.KeywordRelevanceWeight = defaults.KeywordRelevanceWeight
	}
	if result.SkillsQualityWeight == 0 {
		result.SkillsQualityWeight = defaults.SkillsQualityWeight
	}
	if result.ExperienceAlignmentWeight == 0 {
		result.ExperienceAlignmentWeight = defaults.ExperienceAlignmentWeight
	}
	if result.ContentQualityWeight == 0 {
		result.ContentQualityWeight = defaults.ContentQualityWeight
	}

	return result
}

// PortFromEnv reads the ATS_SCAN_PORT environment variable, falling back to
// the given default when unset or malformed.
func PortFromEnv(fallback int) int {
	raw := os.Getenv("ATS_SCAN_PORT")
	if raw == "" {
		return fallback
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		return fallback
	}
	return port
}
