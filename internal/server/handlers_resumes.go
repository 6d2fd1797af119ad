package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/batch"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/upload"
)

// maxRequestBody bounds the whole multipart request: the batch cap times the
// per-file cap, plus form overhead.
const maxRequestBody = int64(batch.MaxFiles)*upload.MaxFileSize + 1<<20

// analyzeResponse is the reply for a single-file analysis.
type analyzeResponse struct {
	FileName string                  `json:"fileName"`
	Resume   *types.ParsedResume     `json:"resume"`
	Analysis *types.EnhancedAnalysis `json:"analysis"`
}

// handleAnalyze accepts one multipart resume file plus an optional criteria
// JSON field and runs the full pipeline.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := r.ParseMultipartForm(upload.MaxFileSize + 1<<20); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	criteria, err := parseCriteria(r.FormValue("criteria"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := readUploadedFile(r, "resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), *input, criteria)
	if err != nil {
		s.errorResponse(w, statusForPipelineError(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		FileName: input.Name,
		Resume:   result.Resume,
		Analysis: result.Analysis,
	})
}

// handleBatch accepts up to the batch cap of resume files under the
// "resumes" field plus an optional shared criteria JSON field. The response
// is always HTTP 200 with per-file status; individual failures never fail
// the batch.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := r.ParseMultipartForm(maxRequestBody); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	criteria, err := parseCriteria(r.FormValue("criteria"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["resumes"]) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No files provided for batch analysis.")
		return
	}

	var files []pipeline.Input
	for _, header := range r.MultipartForm.File["resumes"] {
		f, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to read file %s", header.Filename))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to read file %s", header.Filename))
			return
		}
		files = append(files, pipeline.Input{
			Name:     header.Filename,
			MIMEType: header.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	report, err := batch.Run(r.Context(), s.analyzer, files, criteria)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleListCandidates returns stored candidates, optionally filtered by
// name or skill query parameters.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{
		Name:  r.URL.Query().Get("name"),
		Skill: r.URL.Query().Get("skill"),
	})
	if err != nil {
		log.Printf("[SERVER] failed to list candidates: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}
	if candidates == nil {
		candidates = []db.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": candidates})
}

// handleGetCandidate returns one stored candidate by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] failed to get candidate %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleDeleteCandidate removes one stored candidate by ID.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	deleted, err := s.db.DeleteCandidate(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] failed to delete candidate %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Candidate deleted"})
}

// handleRescore recomputes the analysis for a stored candidate against new
// criteria. Re-analysis always produces a fresh result, never an in-place
// update of stored data.
func (s *Server) handleRescore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	criteria, err := parseCriteria(string(body))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] failed to get candidate %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	analysis := s.engine.Score(candidate.Resume(), criteria)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidateId": candidate.ID,
		"analysis":    analysis,
	})
}

// parseCriteria decodes and validates an optional criteria JSON blob.
// An empty value yields default criteria.
func parseCriteria(raw string) (*types.JobCriteria, error) {
	criteria := &types.JobCriteria{}
	if raw == "" {
		return criteria, nil
	}
	if err := json.Unmarshal([]byte(raw), criteria); err != nil {
		return nil, fmt.Errorf("Invalid criteria JSON")
	}
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("Invalid criteria: %v", err)
	}
	return criteria, nil
}

// readUploadedFile pulls one multipart file into a pipeline input.
func readUploadedFile(r *http.Request, field string) (*pipeline.Input, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("No resume file provided")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("Failed to read uploaded file")
	}

	return &pipeline.Input{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
