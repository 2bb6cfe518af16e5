package types

// Roadmap represents the structured learning roadmap generated for a candidate
// by the LLM. The JSON returned by the model is validated against
// schemas/roadmap.schema.json before it is decoded into this shape.
type Roadmap struct {
	Summary      string         `json:"summary"`
	Stages       []RoadmapStage `json:"stages"`
	MermaidChart string         `json:"mermaid_chart,omitempty"`
}

// RoadmapStage represents one step of the roadmap.
type RoadmapStage struct {
	Title         string   `json:"title"`
	Focus         string   `json:"focus"`
	Skills        []string `json:"skills"`
	DurationWeeks int      `json:"duration_weeks,omitempty"`
}
