// Package main provides the ats_scan CLI: deterministic keyword extraction
// and résumé-against-JD match scoring.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scan/internal/config"
	"github.com/jonathan/ats-scan/internal/refdata"
	"github.com/jonathan/ats-scan/internal/scoring"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scan",
	Short: "Deterministic résumé / job-description keyword analysis",
	Long:  "ats_scan extracts prioritized keywords from a job description, matches them against résumé text (exact, stem, and synonym tiers), flags keyword stuffing, and composes a weighted 0-100 score.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the optional --config file, validated and merged with
// defaults. Missing flag means an empty config.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Config{}, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(config.Config{}), nil
}

// buildRefdata constructs reference data, applying the config's override
// file when one is set.
func buildRefdata(cfg config.Config) (*refdata.Data, error) {
	if cfg.RefdataOverrides == "" {
		return refdata.New(), nil
	}
	ref, err := refdata.NewFromOverrides(cfg.RefdataOverrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data overrides: %w", err)
	}
	return ref, nil
}

// buildWeights maps config weight fields onto scoring weights, falling back
// to the defaults when every field is zero.
func buildWeights(cfg config.Config) scoring.Weights {
	w := scoring.Weights{
		KeywordRelevance:    cfg.KeywordRelevanceWeight,
		SkillsQuality:       cfg.SkillsQualityWeight,
		ExperienceAlignment: cfg.ExperienceAlignmentWeight,
		ContentQuality:      cfg.ContentQualityWeight,
	}
	if w == (scoring.Weights{}) {
		return scoring.DefaultWeights()
	}
	return w
}
