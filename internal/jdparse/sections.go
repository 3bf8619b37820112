// Package jdparse splits a job description into labeled sections and
// isolates the most likely job title. Both operations are heuristic but
// fully deterministic: the same text always produces the same sections and
// the same title.
package jdparse

import (
	"regexp"
	"strings"
)

// SectionType labels what a JD section is for.
type SectionType string

const (
	SectionRequired         SectionType = "required"
	SectionNiceToHave       SectionType = "nice_to_have"
	SectionResponsibilities SectionType = "responsibilities"
	SectionAbout            SectionType = "about"
	SectionUnknown          SectionType = "unknown"
)

// Section is one labeled slice of a JD. Sections appear in document order
// and collectively cover the document.
type Section struct {
	Type    SectionType
	Header  string
	Content string
}

var (
	markdownHeaderRe = regexp.MustCompile(`^#{1,3}\s+(.+)$`)
	boldHeaderRe     = regexp.MustCompile(`^(?:\*\*(.+)\*\*|__(.+)__)$`)
	allCapsHeaderRe  = regexp.MustCompile(`^[A-Z][A-Z /&-]{3,78}$`)
	colonHeaderRe    = regexp.MustCompile(`^([A-Za-z][A-Za-z /&'-]{0,60}):$`)
	wordColonRe      = regexp.MustCompile(`^([A-Za-z][A-Za-z /&'-]{0,40}):\s+(.+)$`)
)

// Classification markers, checked in this order. Nice-to-have comes first so
// "preferred qualifications" is not swallowed by the "qualifications"
// required marker.
var (
	niceToHaveMarkers = []string{
		"nice to have", "nice-to-have", "preferred qualifications",
		"preferred", "bonus", "plus", "ideal", "desired", "desirable",
		"additionally", "good to have", "advantageous",
	}
	requiredMarkers = []string{
		"required", "requirements", "must have", "must-have",
		"minimum qualifications", "basic qualifications", "essential",
		"mandatory", "qualifications", "what you need",
		"what we're looking for", "what we are looking for", "who you are",
	}
	responsibilitiesMarkers = []string{
		"responsibilities", "what you'll do", "what you will do",
		"what you'll be doing", "your role", "the role", "duties",
		"day to day", "day-to-day", "your impact",
	}
	aboutMarkers = []string{
		"about us", "about the company", "about the team", "about",
		"benefits", "compensation", "perks", "why join", "our mission",
		"who we are", "equal opportunity", "salary", "what we offer",
	}
)

// Classify maps a section header (or any marker-bearing text) to its
// section type. Check order is load-bearing: nice-to-have before required,
// required before responsibilities.
func Classify(header string) SectionType {
	lower := strings.ToLower(header)
	switch {
	case containsAny(lower, niceToHaveMarkers):
		return SectionNiceToHave
	case containsAny(lower, requiredMarkers):
		return SectionRequired
	case containsAny(lower, responsibilitiesMarkers):
		return SectionResponsibilities
	case containsAny(lower, aboutMarkers):
		return SectionAbout
	default:
		return SectionUnknown
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// ParseSections splits a JD into labeled sections. Pass one looks for
// header lines (markdown headings, bold-wrapped lines, ALL-CAPS lines,
// short colon-terminated lines). When the JD has no detectable headers at
// all, a fallback pass scans for inline marker phrases instead.
func ParseSections(jd string) []Section {
	lines := strings.Split(jd, "\n")

	type headerLine struct {
		index int
		label string
		rest  string
	}
	var headers []headerLine
	for i, line := range lines {
		if label, rest, ok := headerLabel(line); ok {
			headers = append(headers, headerLine{index: i, label: label, rest: rest})
		}
	}

	if len(headers) == 0 {
		return fallbackSections(lines)
	}

	var sections []Section

	// Everything before the first header is an unknown preamble (this is
	// where the title line usually lives).
	if preamble := strings.TrimSpace(strings.Join(lines[:headers[0].index], "\n")); preamble != "" {
		sections = append(sections, Section{Type: SectionUnknown, Content: preamble})
	}

	for h, hdr := range headers {
		end := len(lines)
		if h+1 < len(headers) {
			end = headers[h+1].index
		}
		var body []string
		if hdr.rest != "" {
			body = append(body, hdr.rest)
		}
		for _, line := range lines[hdr.index+1 : end] {
			body = append(body, line)
		}
		sections = append(sections, Section{
			Type:    Classify(hdr.label),
			Header:  hdr.label,
			Content: strings.TrimSpace(strings.Join(body, "\n")),
		})
	}

	return sections
}

// headerLabel reports whether a line reads as a section header and returns
// the decoration-stripped label. For word-colon lines with trailing text,
// the trailing text is returned separately so it stays in the section body.
func headerLabel(line string) (label, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}

	if m := markdownHeaderRe.FindStringSubmatch(trimmed); m != nil {
		return stripHeaderDecoration(m[1]), "", true
	}
	if m := boldHeaderRe.FindStringSubmatch(trimmed); m != nil {
		label = m[1]
		if label == "" {
			label = m[2]
		}
		return stripHeaderDecoration(label), "", true
	}
	if len(trimmed) >= 4 && len(trimmed) < 80 && allCapsHeaderRe.MatchString(trimmed) {
		return stripHeaderDecoration(trimmed), "", true
	}
	if m := colonHeaderRe.FindStringSubmatch(trimmed); m != nil && len(trimmed) < 80 {
		return stripHeaderDecoration(m[1]), "", true
	}
	if m := wordColonRe.FindStringSubmatch(trimmed); m != nil && len(trimmed) < 80 {
		// Only treat the word-colon form as a header when the prefix is
		// short; "Note: we value curiosity over credentials" is prose.
		if len(strings.Fields(m[1])) <= 4 {
			return stripHeaderDecoration(m[1]), strings.TrimSpace(m[2]), true
		}
	}

	return "", "", false
}

// stripHeaderDecoration removes markdown/bold markers and a trailing colon
// from a header label.
func stripHeaderDecoration(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimLeft(label, "#")
	label = strings.Trim(label, "*_")
	label = strings.TrimSuffix(label, ":")
	return strings.TrimSpace(label)
}

// fallbackSections handles JDs without any explicit headers by scanning for
// inline marker phrases line by line. A new section starts whenever the
// detected type changes; the leading unmatched run stays a single unknown
// section.
func fallbackSections(lines []string) []Section {
	var sections []Section
	current := Section{Type: SectionUnknown}
	var body []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if content != "" {
			current.Content = content
			sections = append(sections, current)
		}
		body = body[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			body = append(body, line)
			continue
		}
		detected := Classify(trimmed)
		if detected != SectionUnknown && detected != current.Type {
			flush()
			current = Section{Type: detected, Header: trimmed}
		}
		body = append(body, line)
	}
	flush()

	if len(sections) == 0 {
		content := strings.TrimSpace(strings.Join(lines, "\n"))
		if content != "" {
			sections = append(sections, Section{Type: SectionUnknown, Content: content})
		}
	}

	return sections
}
