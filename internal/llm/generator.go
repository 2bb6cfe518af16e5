package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

const promptFile = "notes.json"

// Generator produces recruiter notes and candidate roadmaps. The credential is
// bound once at construction and threaded through explicitly; nothing here
// reads global state.
type Generator struct {
	client Client
}

// NewGenerator creates a Generator backed by a Gemini client.
func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := NewClient(ctx, DefaultConfig(), apiKey)
	if err != nil {
		return nil, err
	}
	return &Generator{client: client}, nil
}

// NewGeneratorWithClient creates a Generator over an existing client.
// Used by tests to substitute a stub client.
func NewGeneratorWithClient(client Client) *Generator {
	return &Generator{client: client}
}

// RecruiterNote generates a short hiring-manager paragraph for one candidate.
// A generation failure propagates as an error, never as a silent empty note.
func (g *Generator) RecruiterNote(ctx context.Context, name, domain string, skills map[string][]string, score float64) (string, error) {
	template, err := prompts.Get(promptFile, "recruiter_note")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Name":   name,
		"Domain": domain,
		"Score":  strconv.FormatFloat(score, 'f', 2, 64),
		"Skills": formatSkills(skills),
	})

	note, err := g.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("recruiter note generation failed: %w", err)
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return "", fmt.Errorf("recruiter note generation returned empty text")
	}
	return note, nil
}

// Roadmap generates a structured learning roadmap for one candidate. The
// model's JSON is validated against the roadmap schema before decoding.
func (g *Generator) Roadmap(ctx context.Context, name, domain string, skills map[string][]string, score float64) (*types.Roadmap, error) {
	template, err := prompts.Get(promptFile, "roadmap")
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(template, map[string]string{
		"Name":   name,
		"Domain": domain,
		"Score":  strconv.FormatFloat(score, 'f', 2, 64),
		"Skills": formatSkills(skills),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}

	if err := schemas.ValidateRoadmap(raw); err != nil {
		return nil, fmt.Errorf("roadmap output failed schema validation: %w", err)
	}

	var roadmap types.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap JSON: %w", err)
	}
	return &roadmap, nil
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	return g.client.Close()
}

// formatSkills renders the skills-by-category mapping as stable, readable
// prompt lines. Categories are sorted so prompts are deterministic.
func formatSkills(skills map[string][]string) string {
	if len(skills) == 0 {
		return "(no skills extracted)"
	}

	categories := make([]string, 0, len(skills))
	for category := range skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, category := range categories {
		sb.WriteString("- ")
		sb.WriteString(category)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(skills[category], ", "))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
