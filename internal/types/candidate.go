// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

// Metric keys produced by the skill analysis step. The leaderboard summary
// folds these into the strong/medium/weak distribution.
const (
	MetricStrongSkills = "total_strong_skills"
	MetricMediumSkills = "total_medium_skills"
	MetricWeakSkills   = "total_weak_skills"
)

// CandidateRecord represents one fully processed resume. Every field except
// Error and Rank is always populated: a failed resume still yields a complete
// record with zeroed tallies and empty maps, never missing keys.
type CandidateRecord struct {
	Name          string              `json:"name"`
	Score         float64             `json:"score"`
	WeightedSum   float64             `json:"weighted_sum"`
	NetSkills     int                 `json:"net_skills"`
	Metrics       map[string]int      `json:"metrics"`
	Skills        map[string][]string `json:"skills"`
	RecruiterNote string              `json:"recruiter_note"`
	Error         string              `json:"error,omitempty"`
	// Rank is 1-based and assigned exactly once, after the whole batch is sorted.
	Rank int `json:"rank,omitempty"`
}

// Failed reports whether the record was produced by the failure path.
func (c *CandidateRecord) Failed() bool {
	return c.Error != ""
}

// LeaderboardSummary holds batch-level statistics derived from a ranked set of
// candidates. It is recomputed on every request and never persisted.
type LeaderboardSummary struct {
	TotalCandidates int `json:"total_candidates"`
	// TopCandidate is the name of the rank-1 candidate, null for an empty batch.
	TopCandidate *string `json:"top_candidate"`
	// AverageScore is the mean score rounded to 4 decimal digits.
	AverageScore float64 `json:"average_score"`
	// ScoreDistribution sums tier counts across all candidates' metrics,
	// keyed strong/medium/weak.
	ScoreDistribution map[string]int `json:"score_distribution"`
}
