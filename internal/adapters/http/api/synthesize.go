// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

// SynthesizeDependencies defines the interface for synthesis submission.
type SynthesizeDependencies interface {
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	Enqueue(ctx context.Context, job model.SynthesisJob) bool
}

// SynthesizeHandler handles synthesis submissions.
type SynthesizeHandler struct {
	deps SynthesizeDependencies
}

// NewSynthesizeHandler creates a new synthesize handler.
func NewSynthesizeHandler(deps SynthesizeDependencies) *SynthesizeHandler {
	return &SynthesizeHandler{deps: deps}
}

// HandlePostSynthesize handles POST /synthesize requests.
func (h *SynthesizeHandler) HandlePostSynthesize(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_synthesize"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), req.RequestID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	// Try to enqueue for async processing
	if ok := h.deps.Enqueue(r.Context(), req.toJob(time.Now())); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), req.RequestID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}
