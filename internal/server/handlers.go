package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// LeaderboardResponse is the body returned by POST /api/leaderboard.
type LeaderboardResponse struct {
	Status          string                    `json:"status"`
	BatchID         string                    `json:"batch_id"`
	Domain          string                    `json:"domain"`
	TotalCandidates int                       `json:"total_candidates"`
	Summary         *types.LeaderboardSummary `json:"summary"`
	Leaderboard     []*types.CandidateRecord  `json:"leaderboard"`
}

// handleLeaderboard processes a multipart batch of resumes and returns the
// ranked leaderboard with batch statistics.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck // temp file cleanup

	files := r.MultipartForm.File["resumes"]
	names := r.MultipartForm.Value["names"]

	domain := r.FormValue("domain")
	if domain == "" {
		domain = s.domain
	}

	uploads := make([]pipeline.Upload, 0, len(files))
	for i, header := range files {
		data, err := readUpload(header)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read upload "+header.Filename+": "+err.Error())
			return
		}
		upload := pipeline.Upload{Filename: header.Filename, Data: data}
		if i < len(names) {
			upload.Name = names[i]
		}
		uploads = append(uploads, upload)
	}

	result, err := s.processor.ProcessBatch(r.Context(), uploads, domain)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoFiles) {
			s.errorResponse(w, http.StatusBadRequest, "No PDF files provided.")
			return
		}
		log.Printf("Batch processing failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Batch processing failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, LeaderboardResponse{
		Status:          "success",
		BatchID:         uuid.New().String(),
		Domain:          domain,
		TotalCandidates: len(result.Ranked),
		Summary:         result.Summary,
		Leaderboard:     result.Ranked,
	})
}

// handleRecruiterNote generates a recruiter note for an already-scored candidate.
func (s *Server) handleRecruiterNote(w http.ResponseWriter, r *http.Request) {
	var req types.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	name := req.Name
	if name == "" {
		name = "Candidate"
	}
	domain := req.Domain
	if domain == "" {
		domain = s.domain
	}

	note, err := s.generator.RecruiterNote(r.Context(), name, domain, req.Skills, req.Score)
	if err != nil {
		log.Printf("Recruiter note generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Note generation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"recruiter_note": note})
}

// handleAnalyse scores a single resume without ranking it against a batch.
func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck // temp file cleanup

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No PDF files provided.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = pipeline.DeriveName(header.Filename)
	}
	domain := r.FormValue("domain")
	if domain == "" {
		domain = s.domain
	}

	record := s.processor.Process(r.Context(), data, header.Filename, name, domain)
	s.jsonResponse(w, http.StatusOK, record)
}

// handleSuggest generates an upskilling roadmap for a candidate.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	roadmap, err := s.generator.Roadmap(r.Context(), req.Name, req.Domain, req.Skills, req.Score)
	if err != nil {
		log.Printf("Roadmap generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Roadmap generation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, roadmap)
}

// readUpload reads the full contents of one multipart file header.
func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
