package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/portfolio-studio/internal/pipeline"
	"github.com/jonathan/portfolio-studio/internal/server/middleware"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// maxRequestBody caps request bodies; resume uploads are the largest payload.
const maxRequestBody = 1 << 20

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(out); err != nil && err != io.EOF {
		s.errorResponse(w, &pipeline.ValidationError{Message: "invalid request body"})
		return false
	}
	return true
}

// handleAnalyze scores the authenticated user's portfolio.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := s.pipeline.Analyze(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRecommend suggests a template, theme, and section order.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rec, err := s.pipeline.Recommend(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

type rewriteRequest struct {
	Tone     string `json:"tone"`
	MaxWords int    `json:"maxWords"`
}

// handleRewrite rewrites the portfolio in a requested tone.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req rewriteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.pipeline.Rewrite(r.Context(), userID, types.Tone(req.Tone), req.MaxWords)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	// The pipeline only proposes; the accepted rewrite is written back here.
	if err := s.db.ReplaceSections(r.Context(), userID, result.Sections); err != nil {
		s.errorResponse(w, mapStoreError(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

type optimizeRequest struct {
	JobDescription string `json:"jobDescription"`
	JobURL         string `json:"jobUrl"`
	UseBrowser     bool   `json:"useBrowser"`
	MaxSkills      int    `json:"maxSkills"`
}

// handleOptimize aligns the portfolio to a job description.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req optimizeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.pipeline.Optimize(r.Context(), userID, pipeline.OptimizeOptions{
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		UseBrowser:     req.UseBrowser,
		MaxSkills:      req.MaxSkills,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

type generateRequest struct {
	ResumeText string `json:"resumeText"`
}

// handleGenerate builds a portfolio draft from resume text.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req generateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	draft, err := s.pipeline.Generate(r.Context(), userID, req.ResumeText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	snapshot := &types.PortfolioSnapshot{
		UserID:   userID.String(),
		Sections: draft.Sections,
		Template: draft.SuggestedTemplate,
		Theme:    draft.SuggestedTheme,
	}
	if err := s.db.SavePortfolio(r.Context(), snapshot); err != nil {
		s.errorResponse(w, mapStoreError(err))
		return
	}
	s.jsonResponse(w, http.StatusCreated, draft)
}
