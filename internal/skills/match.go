package skills

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// Tier labels for matched skills. A tier reflects how much confidence the
// resume gives for a skill mention: applied in real work, self-declared, or
// only mentioned in passing.
const (
	TierStrong = "strong"
	TierMedium = "medium"
	TierWeak   = "weak"
)

// sectionTiers maps resume sections to the tier a mention in that section
// earns. A skill exercised in experience or projects outranks one that is
// merely listed, which outranks an incidental mention.
var sectionTiers = map[string]string{
	extraction.SectionExperience:     TierStrong,
	extraction.SectionProjects:       TierStrong,
	extraction.SectionSkills:         TierMedium,
	extraction.SectionCertifications: TierMedium,
	extraction.SectionSummary:        TierWeak,
	extraction.SectionEducation:      TierWeak,
	extraction.SectionAchievements:   TierWeak,
}

// MatchResult holds the outcome of matching a resume against the taxonomy.
type MatchResult struct {
	// SkillsByCategory maps taxonomy categories to the skill names found,
	// sorted and deduplicated. Categories with no matches are omitted.
	SkillsByCategory map[string][]string
	// Tiers maps each matched skill name to its highest earned tier.
	Tiers map[string]string
}

// Match scans a parsed resume document for taxonomy skills. Matching is
// case-insensitive and whole-token; each skill is credited once, at the
// highest tier among the sections where it appears.
func Match(doc *extraction.Document, tax *Taxonomy) *MatchResult {
	result := &MatchResult{
		SkillsByCategory: make(map[string][]string),
		Tiers:            make(map[string]string),
	}
	if doc == nil || tax == nil {
		return result
	}

	for category, entries := range tax.Categories {
		var found []string
		for _, entry := range entries {
			tier, ok := bestTier(doc, entry)
			if !ok {
				continue
			}
			found = append(found, entry.Name)
			result.Tiers[entry.Name] = tier
		}
		if len(found) > 0 {
			sort.Strings(found)
			result.SkillsByCategory[category] = found
		}
	}

	return result
}

// bestTier returns the highest tier a skill earns across all sections it
// appears in, and whether it appears at all.
func bestTier(doc *extraction.Document, entry Entry) (string, bool) {
	best := ""
	for section, lines := range doc.Sections {
		tier, known := sectionTiers[section]
		if !known {
			tier = TierWeak
		}
		for _, line := range lines {
			if !entry.pattern.MatchString(line) {
				continue
			}
			if tierRank(tier) > tierRank(best) {
				best = tier
			}
			break
		}
		if best == TierStrong {
			return best, true
		}
	}
	return best, best != ""
}

func tierRank(tier string) int {
	switch tier {
	case TierStrong:
		return 3
	case TierMedium:
		return 2
	case TierWeak:
		return 1
	default:
		return 0
	}
}
