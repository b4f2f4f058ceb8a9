package server

import (
	"net/http"

	"github.com/jonathan/portfolio-studio/internal/catalog"
	"github.com/jonathan/portfolio-studio/internal/pipeline"
	"github.com/jonathan/portfolio-studio/internal/server/middleware"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// handleGetPortfolio returns the authenticated user's portfolio.
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	snapshot, err := s.db.GetPortfolio(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, mapStoreError(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

type putPortfolioRequest struct {
	Sections []types.Section `json:"sections"`
	Template string          `json:"template"`
	Theme    string          `json:"theme"`
}

// handlePutPortfolio replaces the user's portfolio content wholesale.
func (s *Server) handlePutPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req putPortfolioRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	snapshot := &types.PortfolioSnapshot{
		UserID:   userID.String(),
		Sections: req.Sections,
		Template: req.Template,
		Theme:    req.Theme,
	}
	if err := snapshot.Validate(); err != nil {
		s.errorResponse(w, &pipeline.ValidationError{Message: err.Error()})
		return
	}
	if _, ok := catalog.TemplateByID(snapshot.Template); !ok {
		s.errorResponse(w, &pipeline.ValidationError{Message: "unknown template id"})
		return
	}
	if _, ok := catalog.ThemeByID(snapshot.Theme); !ok {
		s.errorResponse(w, &pipeline.ValidationError{Message: "unknown theme id"})
		return
	}

	if err := s.db.SavePortfolio(r.Context(), snapshot); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

type putAppearanceRequest struct {
	Template string `json:"template"`
	Theme    string `json:"theme"`
}

// handlePutAppearance applies a template and theme, typically after a
// recommendation is accepted.
func (s *Server) handlePutAppearance(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req putAppearanceRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if _, ok := catalog.TemplateByID(req.Template); !ok {
		s.errorResponse(w, &pipeline.ValidationError{Message: "unknown template id"})
		return
	}
	if _, ok := catalog.ThemeByID(req.Theme); !ok {
		s.errorResponse(w, &pipeline.ValidationError{Message: "unknown theme id"})
		return
	}

	if err := s.db.UpdateTemplateTheme(r.Context(), userID, req.Template, req.Theme); err != nil {
		s.errorResponse(w, mapStoreError(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"template": req.Template,
		"theme":    req.Theme,
	})
}

// handleListTemplates returns the template catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Templates())
}

// handleListThemes returns the theme catalog.
func (s *Server) handleListThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Themes())
}
