package ranking

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Distribution keys in the leaderboard summary.
const (
	distStrong = "strong"
	distMedium = "medium"
	distWeak   = "weak"
)

// Summarize computes batch-level statistics from an already ranked candidate
// list. It does not re-sort: the top candidate is whoever holds rank 1, i.e.
// the first element. An empty batch yields the zero-value summary with a null
// top candidate.
func Summarize(ranked []*types.CandidateRecord) *types.LeaderboardSummary {
	if len(ranked) == 0 {
		return &types.LeaderboardSummary{
			TotalCandidates: 0,
			TopCandidate:    nil,
			AverageScore:    0.0,
			ScoreDistribution: map[string]int{
				distStrong: 0,
				distMedium: 0,
				distWeak:   0,
			},
		}
	}

	total := 0.0
	dist := map[string]int{distStrong: 0, distMedium: 0, distWeak: 0}
	for _, candidate := range ranked {
		total += candidate.Score
		dist[distStrong] += candidate.Metrics[types.MetricStrongSkills]
		dist[distMedium] += candidate.Metrics[types.MetricMediumSkills]
		dist[distWeak] += candidate.Metrics[types.MetricWeakSkills]
	}

	top := ranked[0].Name
	return &types.LeaderboardSummary{
		TotalCandidates:   len(ranked),
		TopCandidate:      &top,
		AverageScore:      roundTo4(total / float64(len(ranked))),
		ScoreDistribution: dist,
	}
}

// roundTo4 rounds to 4 decimal digits, matching the precision exposed by the API.
func roundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
