package skills

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := Parse([]byte(`{
		"languages": ["Go", "Python", "C++", "C"],
		"devops_tools": ["Docker", "Kubernetes"],
		"soft_skills": ["Leadership"]
	}`))
	require.NoError(t, err)
	return tax
}

func TestMatch_BasicCategories(t *testing.T) {
	doc := extraction.ParseSections(`Skills
Go, Python and Docker

Experience
Led a team deploying Kubernetes clusters written in Go.`)

	result := Match(doc, testTaxonomy(t))

	assert.Equal(t, []string{"Go", "Python"}, result.SkillsByCategory["languages"])
	assert.ElementsMatch(t, []string{"Docker", "Kubernetes"}, result.SkillsByCategory["devops_tools"])
	assert.NotContains(t, result.SkillsByCategory, "soft_skills")
}

func TestMatch_TierBySection(t *testing.T) {
	doc := extraction.ParseSections(`Summary
Exposure to Python.

Skills
Docker

Experience
Shipped services in Go.`)

	result := Match(doc, testTaxonomy(t))

	assert.Equal(t, TierStrong, result.Tiers["Go"])
	assert.Equal(t, TierMedium, result.Tiers["Docker"])
	assert.Equal(t, TierWeak, result.Tiers["Python"])
}

func TestMatch_HighestTierWins(t *testing.T) {
	doc := extraction.ParseSections(`Skills
Go

Experience
Maintained Go microservices.`)

	result := Match(doc, testTaxonomy(t))

	assert.Equal(t, TierStrong, result.Tiers["Go"])
	// Credited once despite appearing in two sections.
	assert.Equal(t, []string{"Go"}, result.SkillsByCategory["languages"])
}

func TestMatch_WholeTokenBoundaries(t *testing.T) {
	doc := extraction.ParseSections("Skills\nC++ and Golang")

	result := Match(doc, testTaxonomy(t))

	// "C++" must not also credit "C", and "Golang" must not credit "Go".
	assert.Equal(t, []string{"C++"}, result.SkillsByCategory["languages"])
}

func TestMatch_CaseInsensitive(t *testing.T) {
	doc := extraction.ParseSections("Skills\nDOCKER, kubernetes")

	result := Match(doc, testTaxonomy(t))

	assert.ElementsMatch(t, []string{"Docker", "Kubernetes"}, result.SkillsByCategory["devops_tools"])
}

func TestMatch_NilInputs(t *testing.T) {
	result := Match(nil, nil)

	assert.Empty(t, result.SkillsByCategory)
	assert.Empty(t, result.Tiers)
}

func TestMetrics_CountsTiers(t *testing.T) {
	result := &MatchResult{Tiers: map[string]string{
		"Go":     TierStrong,
		"Docker": TierStrong,
		"Python": TierMedium,
		"AWS":    TierWeak,
		"Redis":  TierWeak,
	}}

	metrics := Metrics(result)

	assert.Equal(t, 2, metrics[types.MetricStrongSkills])
	assert.Equal(t, 1, metrics[types.MetricMediumSkills])
	assert.Equal(t, 2, metrics[types.MetricWeakSkills])
}

func TestMetrics_AlwaysPopulatesAllKeys(t *testing.T) {
	metrics := Metrics(nil)

	assert.Equal(t, 0, metrics[types.MetricStrongSkills])
	assert.Equal(t, 0, metrics[types.MetricMediumSkills])
	assert.Equal(t, 0, metrics[types.MetricWeakSkills])
}

func TestDefault_LoadsEmbeddedTaxonomy(t *testing.T) {
	tax, err := Default()

	require.NoError(t, err)
	assert.NotEmpty(t, tax.Categories["languages"])
	assert.Contains(t, tax.CategoryNames(), "databases")
}
