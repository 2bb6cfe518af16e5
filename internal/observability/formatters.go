// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxNoteLength truncates recruiter notes in board output
	maxNoteLength = 120
)

// Printer handles formatted output for the score command
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLeaderboard outputs the ranked candidates with scores and notes.
func (p *Printer) PrintLeaderboard(ranked []*types.CandidateRecord) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	for _, candidate := range ranked {
		sb.WriteString(fmt.Sprintf("%2d. %s — %.2f", candidate.Rank, candidate.Name, candidate.Score))
		if candidate.Failed() {
			sb.WriteString("  [FAILED]")
		}
		sb.WriteString("\n")

		note := candidate.RecruiterNote
		if len(note) > maxNoteLength {
			note = note[:maxNoteLength-3] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", note))
	}

	p.printBox("LEADERBOARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the batch-level statistics.
func (p *Printer) PrintSummary(summary *types.LeaderboardSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates:     %d\n", summary.TotalCandidates))
	top := "(none)"
	if summary.TopCandidate != nil {
		top = *summary.TopCandidate
	}
	sb.WriteString(fmt.Sprintf("Top candidate:  %s\n", top))
	sb.WriteString(fmt.Sprintf("Average score:  %.4f\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Skill tiers:    strong=%d medium=%d weak=%d",
		summary.ScoreDistribution["strong"],
		summary.ScoreDistribution["medium"],
		summary.ScoreDistribution["weak"]))

	p.printBox("BATCH SUMMARY", sb.String())
}
