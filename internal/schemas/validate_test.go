package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoadmap_ValidDocument(t *testing.T) {
	doc := `{
		"summary": "Solid backend foundation, needs cloud depth.",
		"stages": [
			{"title": "Cloud basics", "focus": "Learn AWS core services", "skills": ["AWS", "Terraform"], "duration_weeks": 6}
		],
		"mermaid_chart": "graph TD; A-->B"
	}`

	assert.NoError(t, ValidateRoadmap(doc))
}

func TestValidateRoadmap_MissingStages(t *testing.T) {
	err := ValidateRoadmap(`{"summary": "ok"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateRoadmap_StageMissingFields(t *testing.T) {
	err := ValidateRoadmap(`{
		"summary": "ok",
		"stages": [{"title": "only a title"}]
	}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateRoadmap_NotJSON(t *testing.T) {
	err := ValidateRoadmap("this is not json")

	assert.Error(t, err)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString("{invalid schema", `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
