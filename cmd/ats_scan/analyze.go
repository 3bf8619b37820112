package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scan/internal/analysis"
	"github.com/jonathan/ats-scan/internal/ingestion"
	"github.com/jonathan/ats-scan/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a résumé against a job description",
	Long:  "Extract prioritized keywords from a job description, match them against résumé text, analyze keyword density, and print the weighted score breakdown.",
	RunE:  runAnalyze,
}

var (
	analyzeJDFile     string
	analyzeResumeFile string
	analyzeCount      int
	analyzeJSON       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to job description file (.txt or .html)")
	analyzeCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to résumé text file")
	analyzeCmd.Flags().IntVar(&analyzeCount, "count", 0, "Fixed keyword budget (default: dynamic)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed keyword and match breakdowns")
	_ = analyzeCmd.MarkFlagRequired("jd")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jd, err := readJobDescription(analyzeJDFile)
	if err != nil {
		return err
	}

	resume, err := os.ReadFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read résumé file: %w", err)
	}

	ref, err := buildRefdata(cfg)
	if err != nil {
		return err
	}

	count := analyzeCount
	if count == 0 {
		count = cfg.KeywordCount
	}

	report := analysis.Analyze(jd, string(resume), analysis.Options{
		KeywordCount: count,
		Ref:          ref,
		Weights:      buildWeights(cfg),
	})

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintExtractedKeywords(report.Keywords)
		printer.PrintMatchResult(report.Match)
		printer.PrintDensity(report.Density)
		printer.PrintScore(report)
		return nil
	}

	if report.JobTitle != "" {
		fmt.Printf("Role:       %s\n", report.JobTitle)
	}
	fmt.Printf("Keywords:   %d extracted, %d matched, %d missing\n",
		len(report.Keywords.All), len(report.Match.Matched), len(report.Match.Missing))
	fmt.Printf("Match rate: %d%%\n", report.MatchRate)
	fmt.Printf("Score:      %d / 100\n", report.Score.Overall)
	if len(report.Density.StuffedKeywords) > 0 {
		fmt.Printf("Warning:    stuffed keywords: %s\n", strings.Join(report.Density.StuffedKeywords, ", "))
	}
	return nil
}

// readJobDescription loads a JD file, converting HTML to plain text when
// the extension says so.
func readJobDescription(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		text, err := ingestion.ExtractText(string(raw))
		if err != nil {
			return "", fmt.Errorf("failed to extract text from HTML: %w", err)
		}
		return text, nil
	}
	return ingestion.NormalizeText(string(raw)), nil
}
