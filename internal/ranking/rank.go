// Package ranking builds the candidate leaderboard and its batch-level summary.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Rank sorts candidates by skill-strength score (descending) and attaches a
// 1-based positional rank. Ties are broken alphabetically by name,
// case-insensitively. Equal scores receive distinct consecutive ranks.
//
// The records are mutated in place; the sorted slice is also returned for
// convenience. Failed candidates carry score 0.0 and naturally sink to the
// bottom of the board.
func Rank(candidates []*types.CandidateRecord) []*types.CandidateRecord {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return strings.ToLower(candidates[i].Name) < strings.ToLower(candidates[j].Name)
	})

	for i, candidate := range candidates {
		candidate.Rank = i + 1
	}

	return candidates
}
