package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autoweb/sitesmith/internal/adapters/http/api"
	repository "github.com/autoweb/sitesmith/internal/adapters/repository"
	"github.com/autoweb/sitesmith/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	seen      map[string]bool
	enqueueOK bool
	enqueued  []model.SynthesisJob
	artifacts map[string][]model.TemplateArtifact
}

func newMockDependencies() *mockDependencies {
	return &mockDependencies{
		seen:      make(map[string]bool),
		enqueueOK: true,
		artifacts: make(map[string][]model.TemplateArtifact),
	}
}

func (m *mockDependencies) SeenAndRecord(ctx context.Context, id string) bool {
	if m.seen[id] {
		return true
	}
	m.seen[id] = true
	return false
}

func (m *mockDependencies) Unrecord(ctx context.Context, id string) {
	delete(m.seen, id)
}

func (m *mockDependencies) Enqueue(ctx context.Context, job model.SynthesisJob) bool {
	if !m.enqueueOK {
		return false
	}
	m.enqueued = append(m.enqueued, job)
	return true
}

func (m *mockDependencies) Artifacts(ctx context.Context, businessID string) ([]model.TemplateArtifact, error) {
	variants, ok := m.artifacts[businessID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return variants, nil
}

func (m *mockDependencies) LatestArtifact(ctx context.Context, businessID string) (model.TemplateArtifact, error) {
	variants, ok := m.artifacts[businessID]
	if !ok {
		return model.TemplateArtifact{}, repository.ErrNotFound
	}
	return variants[len(variants)-1], nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newTestMux(deps *mockDependencies) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

const validBody = `{
	"request_id": "req-1",
	"business": {
		"id": "biz-1",
		"name": "Smith & Sons Plumbing",
		"category": "plumber"
	},
	"evaluation": {
		"performance": 35,
		"seo": 50,
		"accessibility": 40
	}
}`

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		mux := newTestMux(newMockDependencies())

		Convey("Then the health endpoint should be accessible", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the stats endpoint should be accessible", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestSynthesizeHandler(t *testing.T) {
	Convey("Given a synthesis endpoint", t, func() {
		deps := newMockDependencies()
		mux := newTestMux(deps)

		Convey("When posting a valid synthesis request", func() {
			req := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader(validBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should be accepted for async processing", func() {
				So(w.Code, ShouldEqual, http.StatusAccepted)

				var ack struct {
					Status    string `json:"status"`
					Duplicate bool   `json:"duplicate"`
				}
				So(json.NewDecoder(w.Body).Decode(&ack), ShouldBeNil)
				So(ack.Status, ShouldEqual, "accepted")
				So(ack.Duplicate, ShouldBeFalse)
			})

			Convey("And the job should carry the business fields", func() {
				So(len(deps.enqueued), ShouldEqual, 1)
				job := deps.enqueued[0]
				So(job.RequestID, ShouldEqual, "req-1")
				So(job.Business.ID, ShouldEqual, "biz-1")
				So(job.Business.Category, ShouldEqual, "plumber")
				So(*job.Evaluation.Performance, ShouldEqual, 35)
			})
		})

		Convey("When posting the same request id twice", func() {
			first := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader(validBody))
			mux.ServeHTTP(httptest.NewRecorder(), first)

			second := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader(validBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, second)

			Convey("Then the second submission is acknowledged as duplicate", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var ack struct {
					Status    string `json:"status"`
					Duplicate bool   `json:"duplicate"`
				}
				So(json.NewDecoder(w.Body).Decode(&ack), ShouldBeNil)
				So(ack.Duplicate, ShouldBeTrue)
				So(len(deps.enqueued), ShouldEqual, 1)
			})
		})

		Convey("When the queue is saturated", func() {
			deps.enqueueOK = false
			req := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader(validBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should push back with 429", func() {
				So(w.Code, ShouldEqual, http.StatusTooManyRequests)
			})

			Convey("And the request id should be released for retry", func() {
				So(deps.seen["req-1"], ShouldBeFalse)
			})
		})

		Convey("When posting malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader("{not json"))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should be rejected with 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When posting a request without a business id", func() {
			body := `{"request_id": "req-2", "business": {"name": "No ID"}}`
			req := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should be rejected with 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest(http.MethodGet, "/synthesize", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestArtifactsHandler(t *testing.T) {
	Convey("Given stored artifacts for a business", t, func() {
		deps := newMockDependencies()
		deps.artifacts["biz-1"] = []model.TemplateArtifact{
			{ID: "a-1", BusinessID: "biz-1", VariantNumber: 1, BusinessType: model.TypeServiceBusiness, GeneratedAt: time.Now()},
			{ID: "a-2", BusinessID: "biz-1", VariantNumber: 2, BusinessType: model.TypeServiceBusiness, GeneratedAt: time.Now()},
		}
		mux := newTestMux(deps)

		Convey("When listing artifacts for the business", func() {
			req := httptest.NewRequest(http.MethodGet, "/artifacts/biz-1", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then all variants are returned oldest first", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					BusinessID string                   `json:"business_id"`
					Variants   []model.TemplateArtifact `json:"variants"`
				}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp.BusinessID, ShouldEqual, "biz-1")
				So(len(resp.Variants), ShouldEqual, 2)
				So(resp.Variants[0].VariantNumber, ShouldEqual, 1)
			})
		})

		Convey("When requesting the latest artifact", func() {
			req := httptest.NewRequest(http.MethodGet, "/artifacts/biz-1/latest", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the newest variant is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var artifact model.TemplateArtifact
				So(json.NewDecoder(w.Body).Decode(&artifact), ShouldBeNil)
				So(artifact.VariantNumber, ShouldEqual, 2)
			})
		})

		Convey("When the business has no artifacts", func() {
			req := httptest.NewRequest(http.MethodGet, "/artifacts/biz-unknown", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the path has trailing segments", func() {
			req := httptest.NewRequest(http.MethodGet, "/artifacts/biz-1/other", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should be rejected with 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}
