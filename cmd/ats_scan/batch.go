package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scan/internal/analysis"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every résumé in a directory against one job description",
	Long:  "Run the full analysis for each résumé file in a directory against a single job description. Résumés are processed in parallel; output order is by filename regardless of scheduling.",
	RunE:  runBatch,
}

var (
	batchJDFile      string
	batchResumeDir   string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVar(&batchJDFile, "jd", "", "Path to job description file (.txt or .html)")
	batchCmd.Flags().StringVar(&batchResumeDir, "resumes", "", "Directory of résumé text files")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of résumés analyzed in parallel")
	_ = batchCmd.MarkFlagRequired("jd")
	_ = batchCmd.MarkFlagRequired("resumes")

	rootCmd.AddCommand(batchCmd)
}

// batchRow is one résumé's outcome, kept per-index so the printed table is
// ordered by filename no matter how the goroutines are scheduled.
type batchRow struct {
	name      string
	score     int
	matchRate int
	matched   int
	total     int
	err       error
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jd, err := readJobDescription(batchJDFile)
	if err != nil {
		return err
	}

	ref, err := buildRefdata(cfg)
	if err != nil {
		return err
	}
	weights := buildWeights(cfg)

	names, err := listResumeFiles(batchResumeDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no résumé files found in %s", batchResumeDir)
	}

	concurrency := batchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Reference data is read-only and each analysis is independent, so
	// plain fan-out needs no coordination beyond the semaphore.
	rows := make([]batchRow, len(names))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			row := batchRow{name: name}
			raw, err := os.ReadFile(filepath.Join(batchResumeDir, name))
			if err != nil {
				row.err = err
				rows[i] = row
				return nil
			}

			report := analysis.Analyze(jd, string(raw), analysis.Options{
				KeywordCount: cfg.KeywordCount,
				Ref:          ref,
				Weights:      weights,
			})
			row.score = report.Score.Overall
			row.matchRate = report.MatchRate
			row.matched = len(report.Match.Matched)
			row.total = len(report.Keywords.All)
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printBatchTable(rows)
	return nil
}

func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read résumé directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".txt", ".md", "":
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func printBatchTable(rows []batchRow) {
	fmt.Printf("%-40s %8s %12s %10s\n", "RESUME", "SCORE", "MATCH RATE", "MATCHED")
	for _, row := range rows {
		if row.err != nil {
			fmt.Printf("%-40s %8s %12s %10s  (%v)\n", row.name, "-", "-", "-", row.err)
			continue
		}
		fmt.Printf("%-40s %8d %11d%% %4d/%d\n",
			row.name, row.score, row.matchRate, row.matched, row.total)
	}
}
