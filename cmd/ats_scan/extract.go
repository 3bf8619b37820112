package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scan/internal/keywords"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract prioritized keywords from a job description",
	RunE:  runExtract,
}

var (
	extractJDFile string
	extractCount  int
	extractJSON   bool
)

func init() {
	extractCmd.Flags().StringVar(&extractJDFile, "jd", "", "Path to job description file (.txt or .html)")
	extractCmd.Flags().IntVar(&extractCount, "count", 0, "Fixed keyword budget (default: dynamic)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print extracted keywords as JSON")
	_ = extractCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jd, err := readJobDescription(extractJDFile)
	if err != nil {
		return err
	}

	ref, err := buildRefdata(cfg)
	if err != nil {
		return err
	}

	extractor := keywords.NewExtractor(ref)
	count := extractCount
	if count == 0 {
		count = cfg.KeywordCount
	}
	if count <= 0 {
		count = extractor.DynamicCount(jd)
	}

	kw := extractor.Extract(jd, count)

	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(kw)
	}

	if kw.JobTitle != "" {
		fmt.Printf("Title: %s\n\n", kw.JobTitle)
	}
	for _, k := range kw.All {
		fmt.Printf("%-30s %s\n", k, kw.Priorities[k])
	}
	return nil
}
