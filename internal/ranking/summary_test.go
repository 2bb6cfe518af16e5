package ranking

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptyBatchZeroValue(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalCandidates)
	assert.Nil(t, summary.TopCandidate)
	assert.Equal(t, 0.0, summary.AverageScore)
	assert.Equal(t, map[string]int{"strong": 0, "medium": 0, "weak": 0}, summary.ScoreDistribution)
}

func TestSummarize_AverageRoundedTo4Decimals(t *testing.T) {
	ranked := Rank([]*types.CandidateRecord{
		candidate("A", 10.0),
		candidate("B", 20.0),
		candidate("C", 20.00005),
	})

	summary := Summarize(ranked)

	assert.Equal(t, 3, summary.TotalCandidates)
	assert.InDelta(t, 16.6667, summary.AverageScore, 1e-9)
}

func TestSummarize_TopCandidateIsRankOne(t *testing.T) {
	ranked := Rank([]*types.CandidateRecord{
		candidate("Bob", 10.0),
		candidate("Alice", 25.0),
	})

	summary := Summarize(ranked)

	require.NotNil(t, summary.TopCandidate)
	assert.Equal(t, "Alice", *summary.TopCandidate)
}

func TestSummarize_DistributionSumsAcrossCandidates(t *testing.T) {
	a := candidate("A", 9)
	a.Metrics = map[string]int{
		types.MetricStrongSkills: 2,
		types.MetricMediumSkills: 1,
		types.MetricWeakSkills:   4,
	}
	b := candidate("B", 3)
	b.Metrics = map[string]int{
		types.MetricStrongSkills: 1,
		// medium key missing: treated as 0
		types.MetricWeakSkills: 2,
	}
	failed := candidate("C", 0)
	failed.Error = "boom"
	failed.Metrics = map[string]int{}

	summary := Summarize(Rank([]*types.CandidateRecord{a, b, failed}))

	assert.Equal(t, 3, summary.ScoreDistribution["strong"])
	assert.Equal(t, 1, summary.ScoreDistribution["medium"])
	assert.Equal(t, 6, summary.ScoreDistribution["weak"])
}

func TestSummarize_DoesNotResort(t *testing.T) {
	// Deliberately unsorted input: Summarize trusts rank order.
	unsorted := []*types.CandidateRecord{
		candidate("Low", 1.0),
		candidate("High", 99.0),
	}

	summary := Summarize(unsorted)

	require.NotNil(t, summary.TopCandidate)
	assert.Equal(t, "Low", *summary.TopCandidate)
}
