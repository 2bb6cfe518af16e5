// Package scoring converts skill-tier metrics into a single weighted skill-strength score.
package scoring

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Tier weights for the weighted sum. These are fixed policy constants, not configuration.
const (
	strongWeight = 1.5
	mediumWeight = 1.0
	weakWeight   = 0.5
)

// saturationPoint controls how quickly the default normalizer approaches 100.
// A weighted sum equal to the saturation point maps to a score of 50.
const saturationPoint = 10.0

// Result holds the output of a scoring pass.
type Result struct {
	// SkillStrengthScore is the normalized final score.
	SkillStrengthScore float64 `json:"skill_strength_score"`
	// WeightedSum is the raw weighted tally before normalization.
	WeightedSum float64 `json:"weighted_sum"`
	// NetSkills is the count of distinct skills credited across all tiers.
	NetSkills int `json:"net_skills"`
}

// Normalizer turns a weighted sum and net skill count into the final score.
// Implementations must be monotone in the weighted sum and return 0.0 when
// netSkills is 0.
type Normalizer func(weightedSum float64, netSkills int) float64

// Calculate produces the skill-strength result for a metrics mapping using
// the default normalizer. Missing tier keys count as 0.
func Calculate(metrics map[string]int) Result {
	return CalculateWith(metrics, DefaultNormalizer)
}

// CalculateWith produces the skill-strength result using a custom normalizer.
func CalculateWith(metrics map[string]int, normalize Normalizer) Result {
	strong := metrics[types.MetricStrongSkills]
	medium := metrics[types.MetricMediumSkills]
	weak := metrics[types.MetricWeakSkills]

	weightedSum := strongWeight*float64(strong) + mediumWeight*float64(medium) + weakWeight*float64(weak)
	netSkills := strong + medium + weak

	return Result{
		SkillStrengthScore: normalize(weightedSum, netSkills),
		WeightedSum:        weightedSum,
		NetSkills:          netSkills,
	}
}

// DefaultNormalizer maps the weighted sum onto a 0-100 scale with a saturating
// transform: score = 100 * ws / (ws + saturationPoint), rounded to two
// decimals. Strictly increasing in the weighted sum, exactly 0.0 for an empty
// skill set, and bounded below 100.
func DefaultNormalizer(weightedSum float64, netSkills int) float64 {
	if netSkills == 0 || weightedSum <= 0 {
		return 0.0
	}
	score := 100.0 * weightedSum / (weightedSum + saturationPoint)
	return math.Round(score*100) / 100
}
