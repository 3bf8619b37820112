package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scan/internal/refdata"
)

func newMatcher() *Matcher {
	return NewMatcher(refdata.New())
}

func TestKeywords_ExactMatch(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"python", "terraform"}, "Built services in Python, provisioned with Terraform.")

	assert.Equal(t, []string{"python", "terraform"}, res.Matched)
	assert.Empty(t, res.Missing)
	require.Len(t, res.Details, 2)
	assert.Equal(t, MatchExact, res.Details[0].Type)
	assert.Empty(t, res.Details[0].MatchedAs)
}

func TestKeywords_PhraseMatchesBySubstring(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"machine learning"}, "Shipped machine learning models to production.")

	assert.Equal(t, []string{"machine learning"}, res.Matched)
}

func TestKeywords_ShortWordNeedsBoundary(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"go"}, "Massaged ego metrics for the dashboard.")
	assert.Equal(t, []string{"go"}, res.Missing, `"go" must not match inside "ego"`)

	res = m.Keywords([]string{"go"}, "Wrote backend services in Go.")
	assert.Equal(t, []string{"go"}, res.Matched)
}

func TestKeywords_StemTier(t *testing.T) {
	m := newMatcher()

	// "deployment" and "deployed" share the stem "deploy".
	res := m.Keywords([]string{"deployment"}, "Deployed twelve services last quarter.")

	require.Equal(t, []string{"deployment"}, res.Matched)
	require.Len(t, res.Details, 1)
	assert.Equal(t, MatchStem, res.Details[0].Type)
	assert.Equal(t, "deploy", res.Details[0].MatchedAs)
}

func TestKeywords_StemTierSkipsPhrases(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"testing frameworks"}, "Built a framework for tests.")

	assert.Equal(t, []string{"testing frameworks"}, res.Missing)
}

func TestKeywords_SynonymTier(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"kubernetes"}, "Experienced with GKE and container orchestration.")

	require.Equal(t, []string{"kubernetes"}, res.Matched)
	require.Len(t, res.Details, 1)
	assert.Equal(t, MatchSynonym, res.Details[0].Type)
	assert.Equal(t, "gke", res.Details[0].MatchedAs)
}

func TestKeywords_SynonymTierIsSymmetric(t *testing.T) {
	m := newMatcher()

	// Variant keyword finds the canonical term in the résumé and vice versa.
	res := m.Keywords([]string{"k8s"}, "Ran workloads on Kubernetes clusters.")
	assert.Equal(t, []string{"k8s"}, res.Matched)

	res = m.Keywords([]string{"kubernetes"}, "Ran workloads on k8s clusters.")
	assert.Equal(t, []string{"kubernetes"}, res.Matched)
}

func TestKeywords_TierOrderExactBeforeSynonym(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"kubernetes"}, "Kubernetes and GKE administration.")

	require.Len(t, res.Details, 1)
	assert.Equal(t, MatchExact, res.Details[0].Type, "exact wins even when a synonym is also present")
}

func TestKeywords_Partition(t *testing.T) {
	m := newMatcher()
	keywords := []string{"python", "kubernetes", "cobol", "fortran"}

	res := m.Keywords(keywords, "Python on GKE.")

	assert.Equal(t, []string{"python", "kubernetes"}, res.Matched)
	assert.Equal(t, []string{"cobol", "fortran"}, res.Missing)
	assert.Len(t, res.Matched, len(res.Details))
	assert.Equal(t, len(keywords), len(res.Matched)+len(res.Missing),
		"every keyword lands in exactly one bucket")
}

func TestKeywords_EmptyInputs(t *testing.T) {
	m := newMatcher()

	res := m.Keywords(nil, "some resume text")
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Missing)

	res = m.Keywords([]string{"python"}, "")
	assert.Equal(t, []string{"python"}, res.Missing)
}

func TestKeywords_BlankKeywordCountsAsMissing(t *testing.T) {
	m := newMatcher()
	keywords := []string{"python", "  ", ""}

	res := m.Keywords(keywords, "Python in production.")

	assert.Equal(t, []string{"python"}, res.Matched)
	assert.Equal(t, []string{"  ", ""}, res.Missing)
	assert.Equal(t, len(keywords), len(res.Matched)+len(res.Missing),
		"blank keywords stay in the partition")
}

func TestBoundaryRe_CachesCompiledPatterns(t *testing.T) {
	assert.Same(t, boundaryRe("go"), boundaryRe("go"))
	assert.True(t, boundaryRe("go").MatchString("written in go."))
	assert.False(t, boundaryRe("go").MatchString("the ego has landed"))
}

func TestKeywords_CaseInsensitive(t *testing.T) {
	m := newMatcher()

	res := m.Keywords([]string{"PYTHON"}, "python everywhere")

	assert.Equal(t, []string{"PYTHON"}, res.Matched, "original casing is preserved in the result")
}

func TestDensity_CountsLiteralOccurrences(t *testing.T) {
	res := Density("Python Python Python Python Python code", []string{"python"})

	assert.Equal(t, 5, res.TotalOccurrences)
	assert.Equal(t, []string{"python"}, res.StuffedKeywords)
	// 5 occurrences over 6 words.
	assert.InDelta(t, 83.3, res.OverallDensity, 0.001)
}

func TestDensity_BelowStuffingThreshold(t *testing.T) {
	res := Density("python python python python and other words here", []string{"python"})

	assert.Equal(t, 4, res.TotalOccurrences)
	assert.Empty(t, res.StuffedKeywords, "four occurrences is not stuffing, five is")
}

func TestDensity_WordBoundary(t *testing.T) {
	res := Density("golang golang golang", []string{"go"})

	assert.Equal(t, 0, res.TotalOccurrences, `"go" must not count inside "golang"`)
}

func TestDensity_PhraseWhitespaceTolerant(t *testing.T) {
	res := Density("machine  learning and machine\nlearning", []string{"machine learning"})

	assert.Equal(t, 2, res.TotalOccurrences)
}

func TestDensity_EmptyInputs(t *testing.T) {
	res := Density("", []string{"python"})
	assert.Zero(t, res.TotalOccurrences)
	assert.Zero(t, res.OverallDensity)
	assert.NotNil(t, res.StuffedKeywords)

	res = Density("some resume text", nil)
	assert.Zero(t, res.TotalOccurrences)
	assert.Empty(t, res.StuffedKeywords)
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0, Rate(0, 0))
	assert.Equal(t, 0, Rate(5, 0))
	assert.Equal(t, 50, Rate(1, 2))
	assert.Equal(t, 67, Rate(2, 3))
	assert.Equal(t, 100, Rate(10, 10))
}
