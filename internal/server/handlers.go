package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-intel/internal/db"
	"github.com/jonathan/resume-intel/internal/types"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result := s.engine.Extract(req.Text)
	resp := types.ExtractResponse{Result: result}

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, http.StatusBadRequest, "Persistence is not configured")
			return
		}
		id, err := s.db.SaveExtraction(r.Context(), req.Text, result)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleGetExtraction(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid extraction ID")
		return
	}

	run, err := s.db.GetExtraction(r.Context(), id)
	if errors.Is(err, db.ErrRunNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Extraction not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ExtractResponse{
		ID:     run.ID.String(),
		Result: run.Result,
	})
}

func (s *Server) handleListExtractions(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Persistence is not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	runs, err := s.db.ListExtractions(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	type runSummary struct {
		ID        string `json:"id"`
		InputHash string `json:"input_hash"`
		CreatedAt string `json:"created_at"`
	}
	summaries := make([]runSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, runSummary{
			ID:        run.ID.String(),
			InputHash: run.InputHash,
			CreatedAt: run.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	s.jsonResponse(w, http.StatusOK, summaries)
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
