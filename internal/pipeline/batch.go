package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// Upload is one resume file submitted in a batch. Name is optional; when
// blank, a display name is derived from the filename.
type Upload struct {
	Filename string
	Name     string
	Data     []byte
}

// BatchResult bundles the outputs of a processed batch. Candidates preserves
// submission order; Ranked is the same records sorted and annotated with
// ranks (the two slices share record pointers).
type BatchResult struct {
	Candidates []*types.CandidateRecord
	Ranked     []*types.CandidateRecord
	Summary    *types.LeaderboardSummary
}

// ProcessBatch processes every upload concurrently, then ranks and summarizes
// the complete result set. Per-candidate failures degrade individual records
// and never abort the batch; the only batch-level failures are an empty batch
// (ErrNoFiles) and context cancellation.
func (p *Processor) ProcessBatch(ctx context.Context, uploads []Upload, domain string) (*BatchResult, error) {
	valid := make([]Upload, 0, len(uploads))
	for _, upload := range uploads {
		if upload.Filename == "" && len(upload.Data) == 0 {
			continue
		}
		valid = append(valid, upload)
	}
	if len(valid) == 0 {
		return nil, ErrNoFiles
	}

	// Fan out one task per resume. Records land in a pre-sized slice, so no
	// two goroutines touch the same element; ranking happens strictly after
	// the join.
	records := make([]*types.CandidateRecord, len(valid))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, upload := range valid {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			name := resolveName(upload)
			records[i] = p.Process(gCtx, upload.Data, upload.Filename, name, domain)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch processing aborted: %w", err)
	}

	ranked := make([]*types.CandidateRecord, len(records))
	copy(ranked, records)
	ranking.Rank(ranked)

	return &BatchResult{
		Candidates: records,
		Ranked:     ranked,
		Summary:    ranking.Summarize(ranked),
	}, nil
}

// resolveName picks the provided candidate name or falls back to one derived
// from the filename.
func resolveName(upload Upload) string {
	if name := strings.TrimSpace(upload.Name); name != "" {
		return name
	}
	return DeriveName(upload.Filename)
}

// DeriveName turns a filename into a display name: strip the extension,
// replace underscores and hyphens with spaces, and title-case the words.
// "jane_doe-resume.pdf" becomes "Jane Doe Resume".
func DeriveName(filename string) string {
	if filename == "" {
		return "Candidate"
	}
	stem := filepath.Base(filename)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	stem = strings.Join(strings.Fields(stem), " ")
	if stem == "" {
		return "Candidate"
	}
	return cases.Title(language.Und).String(strings.ToLower(stem))
}
