package skills

import "github.com/jonathan/resume-screener/internal/types"

// Metrics derives the tier-count metrics mapping consumed by the scorer from
// a match result. All three tier keys are always present, so downstream
// consumers never need to distinguish zero from missing.
func Metrics(result *MatchResult) map[string]int {
	metrics := map[string]int{
		types.MetricStrongSkills: 0,
		types.MetricMediumSkills: 0,
		types.MetricWeakSkills:   0,
	}
	if result == nil {
		return metrics
	}

	for _, tier := range result.Tiers {
		switch tier {
		case TierStrong:
			metrics[types.MetricStrongSkills]++
		case TierMedium:
			metrics[types.MetricMediumSkills]++
		case TierWeak:
			metrics[types.MetricWeakSkills]++
		}
	}
	return metrics
}
