// Package service provides the core synthesis service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/autoweb/sitesmith/internal/adapters/content"
	"github.com/autoweb/sitesmith/internal/adapters/media"
	jobqueue "github.com/autoweb/sitesmith/internal/adapters/mq/queue"
	workerpool "github.com/autoweb/sitesmith/internal/adapters/mq/worker"
	repository "github.com/autoweb/sitesmith/internal/adapters/repository"
	"github.com/autoweb/sitesmith/internal/domain/assemble"
	"github.com/autoweb/sitesmith/internal/domain/classify"
	"github.com/autoweb/sitesmith/internal/domain/dedupe"
	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/gap"
	"github.com/autoweb/sitesmith/internal/domain/model"
	"github.com/autoweb/sitesmith/internal/domain/validate"
	"github.com/autoweb/sitesmith/pkg/logger"
	"github.com/autoweb/sitesmith/pkg/metrics"
)

// Default service configuration.
const (
	defaultQueueSize  = 10000
	defaultDedupeSize = 50000
)

// Service implements the API dependencies for the synthesis system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store        repository.Store
	deduper      dedupe.Deduper
	jobQueue     jobqueue.Queue
	orchestrator *media.Orchestrator
	pipeline     *Pipeline
	workerPool   *workerpool.Pool

	// Configuration
	workerCount  int
	queueSize    int
	dedupeSize   int
	shardCount   int
	threshold    int
	targetImages int
	minImages    int
	jobTimeout   time.Duration
	unsplashKey  string
	pexelsKey    string
	genaiKey     string
	genaiModel   string

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithShardCount sets the artifact store shard count.
func WithShardCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

// WithThreshold sets the qualification gate threshold.
func WithThreshold(t int) Option {
	return func(s *Service) {
		if t > 0 {
			s.threshold = t
		}
	}
}

// WithTargetImages sets the media sourcing target per run.
func WithTargetImages(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.targetImages = n
		}
	}
}

// WithMinImages sets the validation minimum image count.
func WithMinImages(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minImages = n
		}
	}
}

// WithSynthesisTimeout sets the per-job synthesis deadline.
func WithSynthesisTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.jobTimeout = d
		}
	}
}

// WithUnsplashKey sets the Unsplash access key. Empty disables the provider.
func WithUnsplashKey(key string) Option {
	return func(s *Service) {
		s.unsplashKey = key
	}
}

// WithPexelsKey sets the Pexels API key. Empty disables the provider.
func WithPexelsKey(key string) Option {
	return func(s *Service) {
		s.pexelsKey = key
	}
}

// WithGenAIKey sets the generative content API key. Empty disables
// generation and every job uses the local content fallback.
func WithGenAIKey(key string) Option {
	return func(s *Service) {
		s.genaiKey = key
	}
}

// WithGenAIModel sets the generative model name.
func WithGenAIModel(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.genaiModel = name
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:  0, // pool default: NumCPU-based
		queueSize:    defaultQueueSize,
		dedupeSize:   defaultDedupeSize,
		threshold:    gap.DefaultThreshold,
		targetImages: media.DefaultTargetImages,
		minImages:    validate.DefaultMinImages,
		jobTimeout:   DefaultJobTimeout,
		stopCh:       make(chan struct{}),
		logger:       nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting synthesis service...")

	// Initialize components
	storeOpts := []repository.Option{}
	if s.shardCount > 0 {
		storeOpts = append(storeOpts, repository.WithShardCount(s.shardCount))
	}
	s.store = repository.NewMemoryStore(storeOpts...)
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
		jobqueue.WithBufferSize(s.queueSize),
	)

	s.orchestrator = media.NewOrchestrator(
		s.imageProvider(ctx, "unsplash"),
		s.imageProvider(ctx, "pexels"),
		media.WithTargetImages(s.targetImages),
	)

	s.pipeline = NewPipeline(
		classify.New(),
		gap.New(gap.WithThreshold(s.threshold)),
		design.NewResolver(),
		s.orchestrator,
		s.contentEnhancer(ctx),
		assemble.New(),
		validate.New(validate.WithMinImages(s.minImages)),
		s.store,
		WithJobTimeout(s.jobTimeout),
	)

	// Create and start worker pool over the pipeline
	s.workerPool = workerpool.NewPool(s.workerCount, s.jobQueue, s.pipeline)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "synthesis service started",
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Int("threshold", s.threshold),
		logger.Int("targetImages", s.targetImages),
	)

	return nil
}

// imageProvider constructs a media provider by name, or nil when its key is
// absent. The orchestrator's chain skips nil links.
func (s *Service) imageProvider(ctx context.Context, name string) media.Provider {
	switch name {
	case "unsplash":
		if s.unsplashKey == "" {
			s.logger.Warn(ctx, "unsplash key absent, provider disabled")
			return nil
		}
		return media.NewUnsplashClient(s.unsplashKey)
	case "pexels":
		if s.pexelsKey == "" {
			s.logger.Warn(ctx, "pexels key absent, provider disabled")
			return nil
		}
		return media.NewPexelsClient(s.pexelsKey)
	default:
		return nil
	}
}

// contentEnhancer builds the content stage. Without a key, or if client
// construction fails, content degrades to the local fallback for every job.
func (s *Service) contentEnhancer(ctx context.Context) *content.Enhancer {
	if s.genaiKey == "" {
		s.logger.Warn(ctx, "generative content key absent, using local fallback copy")
		return content.NewEnhancer(content.Disabled(), content.WithRetries(0))
	}

	gen, err := content.NewGenAIGenerator(ctx, s.genaiKey, s.genaiModel)
	if err != nil {
		s.logger.Error(ctx, "generative client unavailable, using local fallback copy",
			logger.Error(err))
		return content.NewEnhancer(content.Disabled(), content.WithRetries(0))
	}
	return content.NewEnhancer(gen)
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping synthesis service...")

	// Stop worker pool
	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	// Close queue
	if q, ok := s.jobQueue.(*jobqueue.InMemoryQueue); ok {
		_ = q.Close()
	}

	// Signal cleanup loop to stop
	select {
	case <-s.stopCh:
		// Channel already closed
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "synthesis service stopped")
}

// SeenAndRecord atomically checks if a request id was seen and records it if
// not. Returns true if the request was already seen, false if it was newly
// recorded. This is the ONLY method for deduplication - thread-safe and atomic.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordJobDuplicate()
	}
	return seen
}

// Unrecord removes a request ID from the seen list, allowing it to be retried.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits a synthesis job for asynchronous processing. Returns false
// when the queue is full or stopped; the caller decides whether to unrecord
// the request id and push back.
func (s *Service) Enqueue(ctx context.Context, job model.SynthesisJob) bool {
	s.logger.Debug(ctx, "enqueueing synthesis job",
		logger.String("requestID", job.RequestID),
		logger.String("businessID", job.Business.ID),
	)

	ok := s.jobQueue.Enqueue(ctx, job)
	if ok {
		metrics.UpdateQueueSize(s.jobQueue.Len(ctx))
	}
	return ok
}

// Artifacts returns every stored variant for a business, oldest first.
func (s *Service) Artifacts(ctx context.Context, businessID string) ([]model.TemplateArtifact, error) {
	return s.store.List(ctx, businessID)
}

// LatestArtifact returns the most recent variant for a business.
func (s *Service) LatestArtifact(ctx context.Context, businessID string) (model.TemplateArtifact, error) {
	return s.store.Latest(ctx, businessID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"workerCount":  s.workerCount,
		"queueSize":    s.queueSize,
		"dedupeSize":   s.dedupeSize,
		"threshold":    s.threshold,
		"targetImages": s.targetImages,
	}

	if s.started {
		queueLen := s.jobQueue.Len(ctx)
		artifacts := s.store.Count(ctx)
		businesses := s.store.Businesses(ctx)

		stats["queueLength"] = queueLen
		stats["artifacts"] = artifacts
		stats["businesses"] = businesses
		stats["mediaCacheEntries"] = s.orchestrator.CacheLen()

		// Update metrics
		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateStoreArtifactsTotal(artifacts)
		metrics.UpdateTotalBusinesses(businesses)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}
