package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records prompts and returns canned responses.
type stubClient struct {
	contentResponse string
	jsonResponse    string
	err             error
	lastPrompt      string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	s.lastPrompt = prompt
	return s.contentResponse, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	s.lastPrompt = prompt
	return s.jsonResponse, s.err
}

func (s *stubClient) Close() error { return nil }

func TestRecruiterNote_FillsPrompt(t *testing.T) {
	stub := &stubClient{contentResponse: "Strong fit for the role."}
	gen := NewGeneratorWithClient(stub)

	note, err := gen.RecruiterNote(context.Background(), "Alice", "Data Science",
		map[string][]string{"languages": {"Python", "R"}}, 42.5)

	require.NoError(t, err)
	assert.Equal(t, "Strong fit for the role.", note)
	assert.Contains(t, stub.lastPrompt, "Alice")
	assert.Contains(t, stub.lastPrompt, "Data Science")
	assert.Contains(t, stub.lastPrompt, "42.50")
	assert.Contains(t, stub.lastPrompt, "languages: Python, R")
}

func TestRecruiterNote_ErrorPropagates(t *testing.T) {
	gen := NewGeneratorWithClient(&stubClient{err: errors.New("quota exceeded")})

	_, err := gen.RecruiterNote(context.Background(), "Bob", "SRE", nil, 0)

	assert.ErrorContains(t, err, "quota exceeded")
}

func TestRecruiterNote_EmptyResponseIsAnError(t *testing.T) {
	gen := NewGeneratorWithClient(&stubClient{contentResponse: "   "})

	_, err := gen.RecruiterNote(context.Background(), "Bob", "SRE", nil, 0)

	assert.ErrorContains(t, err, "empty")
}

func TestRoadmap_ValidJSON(t *testing.T) {
	stub := &stubClient{jsonResponse: `{
		"summary": "Good base, needs infra depth.",
		"stages": [
			{"title": "Containers", "focus": "Docker fundamentals", "skills": ["Docker"], "duration_weeks": 3}
		],
		"mermaid_chart": "graph TD; A-->B"
	}`}
	gen := NewGeneratorWithClient(stub)

	roadmap, err := gen.Roadmap(context.Background(), "Alice", "DevOps",
		map[string][]string{"languages": {"Go"}}, 30)

	require.NoError(t, err)
	assert.Equal(t, "Good base, needs infra depth.", roadmap.Summary)
	require.Len(t, roadmap.Stages, 1)
	assert.Equal(t, "Containers", roadmap.Stages[0].Title)
	assert.Equal(t, 3, roadmap.Stages[0].DurationWeeks)
}

func TestRoadmap_SchemaViolationRejected(t *testing.T) {
	gen := NewGeneratorWithClient(&stubClient{jsonResponse: `{"summary": "missing stages"}`})

	_, err := gen.Roadmap(context.Background(), "Alice", "DevOps", nil, 30)

	assert.ErrorContains(t, err, "schema validation")
}

func TestCleanJSONBlock(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{}\n```  ", "{}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanJSONBlock(tc.in))
	}
}

func TestFormatSkills_DeterministicOrder(t *testing.T) {
	out := formatSkills(map[string][]string{
		"tools":     {"Docker"},
		"languages": {"Go", "Rust"},
	})

	assert.Equal(t, "- languages: Go, Rust\n- tools: Docker", out)
}

func TestFormatSkills_Empty(t *testing.T) {
	assert.Equal(t, "(no skills extracted)", formatSkills(nil))
}
