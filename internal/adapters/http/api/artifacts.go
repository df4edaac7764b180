// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

// ArtifactDependencies defines the interface for artifact reads.
type ArtifactDependencies interface {
	Artifacts(ctx context.Context, businessID string) ([]model.TemplateArtifact, error)
	LatestArtifact(ctx context.Context, businessID string) (model.TemplateArtifact, error)
}

// ArtifactsHandler handles artifact read requests.
type ArtifactsHandler struct {
	deps ArtifactDependencies
}

// NewArtifactsHandler creates a new artifacts handler.
func NewArtifactsHandler(deps ArtifactDependencies) *ArtifactsHandler {
	return &ArtifactsHandler{deps: deps}
}

// HandleGetArtifacts handles GET /artifacts/{business_id} and
// GET /artifacts/{business_id}/latest requests.
func (h *ArtifactsHandler) HandleGetArtifacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	// Extract path parameters after /artifacts/
	path := strings.TrimPrefix(r.URL.Path, "/artifacts/")
	businessID, rest, _ := strings.Cut(path, "/")
	if businessID == "" || (rest != "" && rest != "latest") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	if rest == "latest" {
		artifact, err := h.deps.LatestArtifact(r.Context(), businessID)
		if err != nil {
			h.writeReadError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, artifact)
		return
	}

	artifacts, err := h.deps.Artifacts(r.Context(), businessID)
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artifactsResponse{
		BusinessID: businessID,
		Variants:   artifacts,
	})
}

func (h *ArtifactsHandler) writeReadError(w http.ResponseWriter, err error) {
	if isNotFound(err) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}

type artifactsResponse struct {
	BusinessID string                   `json:"business_id"`
	Variants   []model.TemplateArtifact `json:"variants"`
}
