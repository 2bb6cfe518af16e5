// Package pipeline drives a candidate's resume through extraction, scoring,
// and note generation, and fans a batch out across workers before ranking.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// defaultWorkers bounds concurrent per-candidate processing in a batch.
const defaultWorkers = 4

// NoteGenerator produces the recruiter note for a processed candidate.
// llm.Generator satisfies this; tests substitute a stub.
type NoteGenerator interface {
	RecruiterNote(ctx context.Context, name, domain string, skillsByCategory map[string][]string, score float64) (string, error)
}

// ExtractFunc extracts plain text from a resume blob.
type ExtractFunc func(blob []byte) (string, error)

// Options configures a Processor. Zero values select the defaults.
type Options struct {
	// Taxonomy used for skill matching; nil selects the embedded taxonomy.
	Taxonomy *skills.Taxonomy
	// Extract overrides PDF text extraction; nil selects extraction.ExtractText.
	Extract ExtractFunc
	// Workers bounds batch concurrency; values < 1 select defaultWorkers.
	Workers int
}

// Processor runs the per-candidate pipeline. It holds no mutable state, so a
// single instance is safe for concurrent use across requests.
type Processor struct {
	taxonomy *skills.Taxonomy
	notes    NoteGenerator
	extract  ExtractFunc
	workers  int
}

// New creates a Processor with the given note generator.
func New(notes NoteGenerator, opts Options) *Processor {
	p := &Processor{
		taxonomy: opts.Taxonomy,
		notes:    notes,
		extract:  opts.Extract,
		workers:  opts.Workers,
	}
	if p.taxonomy == nil {
		p.taxonomy = skills.MustDefault()
	}
	if p.extract == nil {
		p.extract = extraction.ExtractText
	}
	if p.workers < 1 {
		p.workers = defaultWorkers
	}
	return p
}

// Process runs one resume through extraction, skill matching, scoring, and
// note generation. It never returns an error: every failure is converted into
// a degraded record with zeroed tallies and the failure captured in the
// record's Error field.
func (p *Processor) Process(ctx context.Context, blob []byte, filename, candidateName, domain string) *types.CandidateRecord {
	text, err := p.extract(blob)
	if err != nil {
		return degradedRecord(candidateName, err)
	}
	if text == "" {
		return degradedRecord(candidateName, &extraction.EmptyTextError{Filename: filename})
	}

	doc := extraction.ParseSections(text)
	match := skills.Match(doc, p.taxonomy)
	metrics := skills.Metrics(match)
	result := scoring.Calculate(metrics)

	note, err := p.notes.RecruiterNote(ctx, candidateName, domain, match.SkillsByCategory, result.SkillStrengthScore)
	if err != nil {
		log.Printf("recruiter note failed for %s: %v", candidateName, err)
		return degradedRecord(candidateName, err)
	}

	return &types.CandidateRecord{
		Name:          candidateName,
		Score:         result.SkillStrengthScore,
		WeightedSum:   result.WeightedSum,
		NetSkills:     result.NetSkills,
		Metrics:       metrics,
		Skills:        match.SkillsByCategory,
		RecruiterNote: note,
	}
}

// degradedRecord builds the failure-path record. All fields stay populated
// with the documented defaults so a failed candidate still ranks and
// serializes like any other.
func degradedRecord(name string, cause error) *types.CandidateRecord {
	return &types.CandidateRecord{
		Name:          name,
		Score:         0.0,
		WeightedSum:   0.0,
		NetSkills:     0,
		Metrics:       map[string]int{},
		Skills:        map[string][]string{},
		RecruiterNote: fmt.Sprintf("Processing failed: %v", cause),
		Error:         cause.Error(),
	}
}
