package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	sentrygo "github.com/getsentry/sentry-go"

	"github.com/fitglue/planner/pkg/domain/file_generators"
	"github.com/fitglue/planner/pkg/domain/planner"
	"github.com/fitglue/planner/pkg/domain/profile"
	httputil "github.com/fitglue/planner/pkg/infrastructure/http"
	"github.com/fitglue/planner/pkg/infrastructure/sentry"
)

// defaultWeeks applies when a plan request leaves the horizon unset.
const defaultWeeks = 4

type parseRequest struct {
	Text string `json:"text"`
}

type planRequest struct {
	Text    string `json:"text"`
	Weeks   int    `json:"weeks,omitempty"`
	Render  bool   `json:"render,omitempty"`
	Summary bool   `json:"summary,omitempty"`
}

type planResponse struct {
	Plan     *planner.Plan `json:"plan"`
	Rendered string        `json:"rendered,omitempty"`
	Summary  string        `json:"summary,omitempty"`
}

type fitRequest struct {
	Text  string `json:"text"`
	Weeks int    `json:"weeks,omitempty"`
	Week  int    `json:"week"`
	Day   int    `json:"day"`
}

type healthResponse struct {
	Status         string             `json:"status"`
	CatalogSize    int                `json:"catalog_size"`
	ModelAvailable bool               `json:"model_available"`
	R2Scores       map[string]float64 `json:"r2_scores,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	available, scores := s.svc.ModelHealth()
	httputil.WriteJSON(w, s.logger, http.StatusOK, healthResponse{
		Status:         "ok",
		CatalogSize:    s.svc.Catalog.Len(),
		ModelAvailable: available,
		R2Scores:       scores,
	})
}

// handleParse extracts a profile from free text. Parsing is total:
// unrecognized text yields the default profile, never an error.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	p := profile.Parse(req.Text)
	httputil.WriteJSON(w, s.logger, http.StatusOK, p)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	plan, err := s.generate(r, req.Text, req.Weeks)
	if err != nil {
		s.writePlanError(w, err)
		return
	}

	resp := planResponse{Plan: plan}
	if req.Render {
		resp.Rendered = planner.RenderText(plan)
	}
	if req.Summary && s.svc.Summarizer.Enabled() {
		summary, err := s.svc.Summarizer.Summarize(r.Context(), s.logger, plan)
		if err != nil {
			s.logger.Warn("coaching summary failed", "error", err)
		} else {
			resp.Summary = summary
		}
	}

	httputil.WriteJSON(w, s.logger, http.StatusOK, resp)
}

// handlePlanFIT generates a plan and returns one training day as a
// binary FIT file.
func (s *Server) handlePlanFIT(w http.ResponseWriter, r *http.Request) {
	var req fitRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	plan, err := s.generate(r, req.Text, req.Weeks)
	if err != nil {
		s.writePlanError(w, err)
		return
	}

	if req.Week < 1 || req.Week > len(plan.Weeks) {
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "invalid_input", fmt.Sprintf("week must be between 1 and %d", len(plan.Weeks)))
		return
	}
	week := plan.Weeks[req.Week-1]
	if req.Day < 1 || req.Day > len(week.Days) {
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "invalid_input", "day must be between 1 and 7")
		return
	}
	day := week.Days[req.Day-1]
	if day.Rest {
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "invalid_input", fmt.Sprintf("week %d day %d is a rest day", req.Week, req.Day))
		return
	}

	data, err := file_generators.GenerateDayFile(day, time.Now().UTC().Truncate(time.Second))
	if err != nil {
		httputil.WriteError(w, s.logger, http.StatusInternalServerError, "fit_encoding", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="plan-w%d-d%d.fit"`, req.Week, req.Day))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Failed to write FIT response", "error", err)
	}
}

func (s *Server) generate(r *http.Request, text string, weeks int) (*planner.Plan, error) {
	if weeks == 0 {
		weeks = defaultWeeks
	}
	p := profile.Parse(text)
	plan, err := s.svc.Planner.Generate(r.Context(), s.logger, p, weeks)
	if err != nil {
		return nil, err
	}
	if plan.Source == planner.SourceExpertRules {
		sentry.CaptureMessage("plan served from baseline tables", sentrygo.LevelWarning, map[string]interface{}{
			"request_id": RequestIDFrom(r.Context()),
		}, s.logger)
	}
	return plan, nil
}

func (s *Server) writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidInput):
		httputil.WriteError(w, s.logger, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		s.logger.Error("plan generation failed", "error", err)
		httputil.WriteError(w, s.logger, http.StatusInternalServerError, "internal", "plan generation failed")
	}
}
