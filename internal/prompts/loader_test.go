package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_RecruiterNotePrompt(t *testing.T) {
	prompt, err := Get("notes.json", "recruiter_note")

	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Name}}")
	assert.Contains(t, prompt, "{{.Domain}}")
	assert.Contains(t, prompt, "{{.Skills}}")
}

func TestGet_RoadmapPromptDemandsJSON(t *testing.T) {
	prompt, err := Get("notes.json", "roadmap")

	require.NoError(t, err)
	assert.Contains(t, prompt, "ONLY valid JSON")
	assert.Contains(t, prompt, "mermaid_chart")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("notes.json", "nope")

	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "recruiter_note")

	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("Hello {{.Name}}, score {{.Score}}", map[string]string{
		"Name":  "Alice",
		"Score": "42.5",
	})

	assert.Equal(t, "Hello Alice, score 42.5", out)
}

func TestMustGet_PanicsOnMissingPrompt(t *testing.T) {
	assert.Panics(t, func() { MustGet("notes.json", "does-not-exist") })
}
