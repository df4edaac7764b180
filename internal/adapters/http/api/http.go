// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	repository "github.com/autoweb/sitesmith/internal/adapters/repository"
	"github.com/autoweb/sitesmith/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SeenAndRecord atomically checks and records a request id.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord releases a request id so a rejected submission can retry.
	Unrecord(ctx context.Context, id string)

	// Enqueue pushes a job for async processing. Returns false on backpressure.
	Enqueue(ctx context.Context, job model.SynthesisJob) bool

	// Read operations expose persisted template artifacts.
	Artifacts(ctx context.Context, businessID string) ([]model.TemplateArtifact, error)
	LatestArtifact(ctx context.Context, businessID string) (model.TemplateArtifact, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	synthesizeHandler *SynthesizeHandler
	artifactsHandler  *ArtifactsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		synthesizeHandler: NewSynthesizeHandler(deps),
		artifactsHandler:  NewArtifactsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", MetricsMiddleware(s.healthHandler.HandleHealth, "metrics"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/synthesize", MetricsMiddleware(s.synthesizeHandler.HandlePostSynthesize, "synthesize"))
	mux.HandleFunc("/artifacts/", MetricsMiddleware(s.artifactsHandler.HandleGetArtifacts, "artifacts"))
}

// synthesizeRequest mirrors the OpenAPI schema for POST /synthesize.
type synthesizeRequest struct {
	RequestID  string            `json:"request_id"`
	Business   businessPayload   `json:"business"`
	Evaluation evaluationPayload `json:"evaluation"`
}

type businessPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	WebsiteURL    string   `json:"website_url"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	ScrapedText   string   `json:"scraped_text"`
	ScrapedImages []string `json:"scraped_images"`
}

type evaluationPayload struct {
	Performance   *float64         `json:"performance"`
	SEO           *float64         `json:"seo"`
	Accessibility *float64         `json:"accessibility"`
	Problems      []problemPayload `json:"problems"`
	EvaluatedAt   string           `json:"evaluated_at"`
}

type problemPayload struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

func (r synthesizeRequest) validate() error {
	switch {
	case strings.TrimSpace(r.RequestID) == "":
		return errors.New("missing request_id")
	case strings.TrimSpace(r.Business.ID) == "":
		return errors.New("missing business.id")
	case strings.TrimSpace(r.Business.Name) == "":
		return errors.New("missing business.name")
	}
	if r.Evaluation.EvaluatedAt != "" {
		if _, err := time.Parse(time.RFC3339, r.Evaluation.EvaluatedAt); err != nil {
			return errors.New("invalid evaluation.evaluated_at; must be RFC3339")
		}
	}
	return nil
}

// toJob converts the wire request into the queued domain job.
func (r synthesizeRequest) toJob(now time.Time) model.SynthesisJob {
	eval := model.EvaluationSummary{
		BusinessID:    r.Business.ID,
		Performance:   r.Evaluation.Performance,
		SEO:           r.Evaluation.SEO,
		Accessibility: r.Evaluation.Accessibility,
	}
	if ts, err := time.Parse(time.RFC3339, r.Evaluation.EvaluatedAt); err == nil {
		eval.EvaluatedAt = ts
	}
	for _, p := range r.Evaluation.Problems {
		eval.Problems = append(eval.Problems, model.Problem{
			Category:    model.ProblemCategory(p.Category),
			Severity:    model.Severity(p.Severity),
			Description: p.Description,
		})
	}

	return model.SynthesisJob{
		RequestID: r.RequestID,
		Business: model.BusinessProfile{
			ID:          r.Business.ID,
			Name:        r.Business.Name,
			Category:    r.Business.Category,
			Description: r.Business.Description,
			Location:    r.Business.Location,
			WebsiteURL:  r.Business.WebsiteURL,
			Contact: model.Contact{
				Phone:   r.Business.Phone,
				Email:   r.Business.Email,
				Address: r.Business.Address,
			},
			ScrapedText:   r.Business.ScrapedText,
			ScrapedImages: r.Business.ScrapedImages,
		},
		Evaluation:  eval,
		SubmittedAt: now,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
