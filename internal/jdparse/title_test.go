package jdparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJobTitle_ExplicitLabels(t *testing.T) {
	tests := []struct {
		name string
		jd   string
		want string
	}{
		{"job title", "Job Title: Senior Platform Engineer\n\nMore text.", "Senior Platform Engineer"},
		{"position", "Position: Data Analyst\nDetails follow.", "Data Analyst"},
		{"role", "Role: Staff Software Engineer", "Staff Software Engineer"},
		{"hiring for", "Hiring For: Backend Developer", "Backend Developer"},
		{"we are hiring", "We are hiring a DevOps Engineer! Apply today.", "DevOps Engineer"},
		{"case insensitive", "JOB TITLE: Engineering Manager", "Engineering Manager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJobTitle(tt.jd)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJobTitle_LabelWinsOverEarlierLines(t *testing.T) {
	jd := "Acme Corp — engineering jobs\nJob Title: Principal Architect"

	got, ok := ExtractJobTitle(jd)

	require.True(t, ok)
	assert.Equal(t, "Principal Architect", got)
}

func TestExtractJobTitle_ScoredHeuristic(t *testing.T) {
	jd := "# Senior Backend Engineer\n\nWe build payment infrastructure for marketplaces."

	got, ok := ExtractJobTitle(jd)

	require.True(t, ok)
	assert.Equal(t, "Senior Backend Engineer", got)
}

func TestExtractJobTitle_RoleWordGate(t *testing.T) {
	jd := "Welcome to our careers page.\nJoin a fast growing team today."

	_, ok := ExtractJobTitle(jd)

	assert.False(t, ok, "lines without a role word never qualify")
}

func TestExtractJobTitle_SentenceLinesScoreLower(t *testing.T) {
	jd := "We are looking for an experienced engineer to join our rapidly expanding infrastructure organization in Berlin or remote.\nStaff Engineer\nMore details below."

	got, ok := ExtractJobTitle(jd)

	require.True(t, ok)
	assert.Equal(t, "Staff Engineer", got)
}

func TestExtractJobTitle_OnlyScansLeadingLines(t *testing.T) {
	jd := "one\ntwo\nthree\nfour\nfive\nSenior Software Engineer"

	_, ok := ExtractJobTitle(jd)

	assert.False(t, ok, "candidates past the scan window are ignored")
}

func TestExtractJobTitle_Empty(t *testing.T) {
	_, ok := ExtractJobTitle("")
	assert.False(t, ok)
}
