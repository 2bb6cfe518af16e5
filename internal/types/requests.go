package types

import "github.com/go-playground/validator/v10"

// NoteRequest represents the body of POST /api/recruiter-note. Name and domain
// fall back to handler defaults when omitted.
type NoteRequest struct {
	Name   string              `json:"name,omitempty"`
	Domain string              `json:"domain,omitempty"`
	Skills map[string][]string `json:"skills,omitempty"`
	Score  float64             `json:"score" validate:"gte=0"`
}

// RoadmapRequest represents the body of POST /api/candidate/suggest.
type RoadmapRequest struct {
	Name   string              `json:"name" validate:"required,min=1"`
	Domain string              `json:"domain" validate:"required,min=1"`
	Skills map[string][]string `json:"skills" validate:"required"`
	Score  float64             `json:"score" validate:"gte=0"`
}

// Validate validates the NoteRequest using the validator.
func (r *NoteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
