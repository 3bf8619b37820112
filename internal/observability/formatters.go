// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scan/internal/analysis"
	"github.com/jonathan/ats-scan/internal/keywords"
	"github.com/jonathan/ats-scan/internal/match"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedKeywords outputs a human-readable summary of the extracted
// keyword set, grouped by priority.
func (p *Printer) PrintExtractedKeywords(kw *keywords.ExtractedKeywords) {
	if kw == nil || len(kw.All) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(kw.All)))

	byPriority := map[keywords.Priority][]string{}
	for _, k := range kw.All {
		pr := kw.Priorities[k]
		byPriority[pr] = append(byPriority[pr], k)
	}

	order := []keywords.Priority{
		keywords.PriorityTitle,
		keywords.PriorityRequired,
		keywords.PriorityResponsibilities,
		keywords.PriorityNiceToHave,
		keywords.PriorityGeneral,
	}
	for _, pr := range order {
		group := byPriority[pr]
		if len(group) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", pr))
		count := min(len(group), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", group[i]))
		}
		if len(group) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs matched and missing keywords with match tiers.
func (p *Printer) PrintMatchResult(res *match.Result) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d\n\n", len(res.Matched), len(res.Missing)))

	count := min(len(res.Details), maxItemsToShow)
	for i := 0; i < count; i++ {
		d := res.Details[i]
		if d.MatchedAs != "" {
			sb.WriteString(fmt.Sprintf("✓ %s (%s: %s)\n", d.Keyword, d.Type, d.MatchedAs))
		} else {
			sb.WriteString(fmt.Sprintf("✓ %s (%s)\n", d.Keyword, d.Type))
		}
	}
	if len(res.Details) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more matches\n", len(res.Details)-maxItemsToShow))
	}

	if len(res.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count = min(len(res.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("✗ %s\n", res.Missing[i]))
		}
		if len(res.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(res.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDensity outputs the density analysis and any stuffing warnings.
func (p *Printer) PrintDensity(d *match.DensityResult) {
	if d == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall density:    %.1f%%\n", d.OverallDensity))
	sb.WriteString(fmt.Sprintf("Total occurrences:  %d\n", d.TotalOccurrences))

	if len(d.StuffedKeywords) > 0 {
		sb.WriteString("\nStuffed keywords (≥5 occurrences):\n")
		for _, k := range d.StuffedKeywords {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", k))
		}
	}

	p.printBox("KEYWORD DENSITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the weighted score breakdown.
func (p *Printer) PrintScore(r *analysis.Report) {
	if r == nil || r.Score == nil {
		return
	}

	var sb strings.Builder
	if r.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:  %s\n\n", r.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Keyword relevance:     %5.1f\n", r.Score.KeywordRelevance))
	sb.WriteString(fmt.Sprintf("Skills quality:        %5.1f\n", r.Score.SkillsQuality))
	sb.WriteString(fmt.Sprintf("Experience alignment:  %5.1f\n", r.Score.ExperienceAlignment))
	sb.WriteString(fmt.Sprintf("Content quality:       %5.1f\n", r.Score.ContentQuality))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Match rate:  %d%%\n", r.MatchRate))
	sb.WriteString(fmt.Sprintf("OVERALL:     %d / 100", r.Score.Overall))

	p.printBox("SCORE BREAKDOWN", sb.String())
}
