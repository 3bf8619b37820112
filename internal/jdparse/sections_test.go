package jdparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Ordering(t *testing.T) {
	tests := []struct {
		header string
		want   SectionType
	}{
		{"Requirements", SectionRequired},
		{"Minimum Qualifications", SectionRequired},
		{"Must Have", SectionRequired},
		{"Nice to Have", SectionNiceToHave},
		{"Bonus Points", SectionNiceToHave},
		// "preferred qualifications" contains "qualifications" but must
		// classify as nice-to-have because those markers are checked first.
		{"Preferred Qualifications", SectionNiceToHave},
		{"Responsibilities", SectionResponsibilities},
		{"What You'll Do", SectionResponsibilities},
		{"About Us", SectionAbout},
		{"Benefits & Compensation", SectionAbout},
		{"Some Random Header", SectionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.header))
		})
	}
}

func TestParseSections_ColonHeaders(t *testing.T) {
	jd := "Job Title: Senior Platform Engineer\n\nRequired:\nKubernetes, Docker, Python.\n\nNice to Have:\nRust."

	sections := ParseSections(jd)
	require.NotEmpty(t, sections)

	types := make(map[SectionType]string)
	for _, s := range sections {
		types[s.Type] = s.Content
	}

	assert.Contains(t, types[SectionRequired], "Kubernetes")
	assert.Contains(t, types[SectionNiceToHave], "Rust")
}

func TestParseSections_MarkdownHeaders(t *testing.T) {
	jd := "# Backend Engineer\n\n## Requirements\nGo and PostgreSQL.\n\n## What You'll Do\nBuild services.\n\n## About Us\nWe are a startup."

	sections := ParseSections(jd)

	var got []SectionType
	for _, s := range sections {
		got = append(got, s.Type)
	}
	assert.Equal(t, []SectionType{SectionUnknown, SectionRequired, SectionResponsibilities, SectionAbout}, got)
}

func TestParseSections_AllCapsHeaders(t *testing.T) {
	jd := "Intro line\n\nREQUIREMENTS\nPython and SQL.\n\nBENEFITS\nHealth insurance."

	sections := ParseSections(jd)

	var types []SectionType
	for _, s := range sections {
		types = append(types, s.Type)
	}
	assert.Contains(t, types, SectionRequired)
	assert.Contains(t, types, SectionAbout)
}

func TestParseSections_BoldHeaders(t *testing.T) {
	jd := "**Requirements**\nGo experience.\n\n**Nice to have**\nRust experience."

	sections := ParseSections(jd)

	require.Len(t, sections, 2)
	assert.Equal(t, SectionRequired, sections[0].Type)
	assert.Equal(t, "Requirements", sections[0].Header)
	assert.Equal(t, SectionNiceToHave, sections[1].Type)
}

func TestParseSections_OrderingPreserved(t *testing.T) {
	jd := "## Nice to Have\nRust.\n\n## Requirements\nGo."

	sections := ParseSections(jd)

	require.Len(t, sections, 2)
	assert.Equal(t, SectionNiceToHave, sections[0].Type)
	assert.Equal(t, SectionRequired, sections[1].Type)
}

func TestParseSections_ContentPartition(t *testing.T) {
	jd := "Preamble text here.\n\n## Requirements\nGo, Docker.\n\n## Benefits\nRemote work."

	sections := ParseSections(jd)

	var all strings.Builder
	for _, s := range sections {
		all.WriteString(s.Content)
		all.WriteString("\n")
	}
	joined := all.String()

	// Every content line of the document survives in some section.
	assert.Contains(t, joined, "Preamble text here.")
	assert.Contains(t, joined, "Go, Docker.")
	assert.Contains(t, joined, "Remote work.")
}

func TestParseSections_FallbackInlineMarkers(t *testing.T) {
	// No header-shaped lines at all; the inline pass must kick in. Each
	// marker line is long and sentence-like so the header scan skips it.
	jd := "We are a growing analytics company working across many industries worldwide.\n" +
		"The requirements for this position include solid Python and strong SQL experience along with attention to detail.\n" +
		"Your day to day duties will include building dashboards and maintaining our reporting pipelines for stakeholders.\n"

	sections := ParseSections(jd)

	var types []SectionType
	for _, s := range sections {
		types = append(types, s.Type)
	}
	assert.Equal(t, SectionUnknown, types[0], "leading unmatched text stays unknown")
	assert.Contains(t, types, SectionRequired)
	assert.Contains(t, types, SectionResponsibilities)
}

func TestParseSections_NoMarkersAtAll(t *testing.T) {
	jd := "Just one plain paragraph describing a vague opportunity with no structure whatsoever."

	sections := ParseSections(jd)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionUnknown, sections[0].Type)
	assert.Equal(t, jd, sections[0].Content)
}

func TestParseSections_Empty(t *testing.T) {
	assert.Empty(t, ParseSections(""))
}

func TestParseSections_HeaderDecorationStripped(t *testing.T) {
	jd := "### Requirements:\nGo."

	sections := ParseSections(jd)

	require.Len(t, sections, 1)
	assert.Equal(t, "Requirements", sections[0].Header)
}
