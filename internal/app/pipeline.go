package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/autoweb/sitesmith/internal/adapters/media"
	repository "github.com/autoweb/sitesmith/internal/adapters/repository"
	"github.com/autoweb/sitesmith/internal/domain/assemble"
	"github.com/autoweb/sitesmith/internal/domain/classify"
	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/gap"
	"github.com/autoweb/sitesmith/internal/domain/model"
	"github.com/autoweb/sitesmith/internal/domain/validate"
	"github.com/autoweb/sitesmith/pkg/logger"
	"github.com/autoweb/sitesmith/pkg/metrics"
)

// DefaultJobTimeout bounds one synthesis run end to end. Media and content
// stages inherit whatever budget remains.
const DefaultJobTimeout = 3 * time.Minute

// MediaSourcer gathers media for a profile. Sourcing never fails; deficits
// come back as placeholders inside the result.
type MediaSourcer interface {
	Source(ctx context.Context, bt model.BusinessType, profile design.Profile) media.Result
}

// ContentEnhancer produces final copy for a business, degraded or not.
type ContentEnhancer interface {
	Enhance(ctx context.Context, biz model.BusinessProfile, cls model.ClassificationResult, profile design.Profile) model.ContentPackage
}

// Pipeline runs one synthesis job from classification through persistence.
// It implements the worker pool's Synthesizer contract: a nil return covers
// both a persisted artifact and a clean qualification skip.
type Pipeline struct {
	classifier *classify.Classifier
	analyzer   *gap.Analyzer
	resolver   *design.Resolver
	media      MediaSourcer
	content    ContentEnhancer
	assembler  *assemble.Assembler
	checker    *validate.Checker
	store      repository.Store

	jobTimeout time.Duration
	logger     logger.Logger
}

// PipelineOption applies a configuration option to the Pipeline.
type PipelineOption func(*Pipeline)

// WithJobTimeout sets the per-job deadline.
func WithJobTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.jobTimeout = d
		}
	}
}

// WithPipelineLogger sets a custom logger for the pipeline.
func WithPipelineLogger(log logger.Logger) PipelineOption {
	return func(p *Pipeline) {
		if log != nil {
			p.logger = log
		}
	}
}

// NewPipeline wires the synthesis stages together.
func NewPipeline(
	classifier *classify.Classifier,
	analyzer *gap.Analyzer,
	resolver *design.Resolver,
	sourcer MediaSourcer,
	enhancer ContentEnhancer,
	assembler *assemble.Assembler,
	checker *validate.Checker,
	store repository.Store,
	opts ...PipelineOption,
) *Pipeline {
	p := &Pipeline{
		classifier: classifier,
		analyzer:   analyzer,
		resolver:   resolver,
		media:      sourcer,
		content:    enhancer,
		assembler:  assembler,
		checker:    checker,
		store:      store,
		jobTimeout: DefaultJobTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("pipeline")
	}
	return p
}

// Synthesize runs the full pipeline for one job.
func (p *Pipeline) Synthesize(ctx context.Context, job model.SynthesisJob) error {
	ctx, cancel := context.WithTimeout(ctx, p.jobTimeout)
	defer cancel()

	start := time.Now()

	cls := p.classify(ctx, job)

	analysis, err := p.analyzer.Analyze(job.Evaluation)
	if err != nil {
		// Incomplete evaluations fail closed: no synthesis without a verdict.
		metrics.RecordErrorByComponent("pipeline", "gap_analysis")
		return fmt.Errorf("gap analysis for business %s: %w", job.Business.ID, err)
	}
	if !analysis.ShouldSynthesize {
		metrics.RecordJobSkipped()
		p.logger.Info(ctx, "business already performing well, skipping synthesis",
			logger.String("businessID", job.Business.ID),
			logger.Int("aggregate", analysis.Aggregate),
		)
		return nil
	}

	profile := p.resolver.Resolve(cls.BusinessType)

	sourced, pkg := p.gather(ctx, job, cls, profile)

	doc, err := p.assembler.Build(profile, pkg, sourced.Images, sourced.HeroVideo)
	if err != nil {
		metrics.RecordValidationOutcome(string(validate.FailedFatal))
		metrics.RecordSynthesisError()
		return fmt.Errorf("assembly for business %s: %w", job.Business.ID, err)
	}

	report := p.checker.Check(doc, profile)

	var loop validate.Loop
	if needsRepair(report) && loop.CanRepair() {
		loop.RecordAttempt()
		doc, sourced, report = p.repair(ctx, job, cls, profile, pkg, doc, sourced, report)
	}

	outcome := loop.Settle(unrepaired(report) == 0)
	metrics.RecordValidationOutcome(string(outcome))

	artifact := model.TemplateArtifact{
		ID:           uuid.NewString(),
		BusinessID:   job.Business.ID,
		Structure:    doc,
		Media:        sourced.Images,
		HeroVideo:    sourced.HeroVideo,
		BusinessType: cls.BusinessType,
		Confidence:   cls.Confidence,
		Warnings:     report,
		GeneratedAt:  time.Now().UTC(),
	}

	saved, err := p.store.Save(ctx, artifact)
	if err != nil {
		metrics.RecordStoreError()
		return fmt.Errorf("persisting artifact for business %s: %w", job.Business.ID, err)
	}

	metrics.RecordArtifactPersisted()
	metrics.RecordJobProcessed()
	metrics.RecordPipelineLatency(float64(time.Since(start).Milliseconds()))

	p.logger.Info(ctx, "template artifact persisted",
		logger.String("businessID", saved.BusinessID),
		logger.Int("variant", saved.VariantNumber),
		logger.String("businessType", string(saved.BusinessType)),
		logger.String("outcome", string(outcome)),
		logger.Int("images", len(saved.Media)),
		logger.Int("placeholders", sourced.PlaceholderCount),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// classify runs the classification stage and its bookkeeping.
func (p *Pipeline) classify(ctx context.Context, job model.SynthesisJob) model.ClassificationResult {
	stageStart := time.Now()
	cls := p.classifier.Classify(job.Business.Category, job.Business.SearchText())
	metrics.RecordClassification(string(cls.BusinessType))
	metrics.RecordStageLatency("classify", float64(time.Since(stageStart).Milliseconds()))

	p.logger.Debug(ctx, "business classified",
		logger.String("businessID", job.Business.ID),
		logger.String("businessType", string(cls.BusinessType)),
		logger.Float64("confidence", cls.Confidence),
	)
	return cls
}

// gather runs media sourcing and content enhancement concurrently. Neither
// stage can fail the job: both degrade internally.
func (p *Pipeline) gather(
	ctx context.Context,
	job model.SynthesisJob,
	cls model.ClassificationResult,
	profile design.Profile,
) (media.Result, model.ContentPackage) {
	var (
		sourced media.Result
		pkg     model.ContentPackage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stageStart := time.Now()
		sourced = p.media.Source(gctx, cls.BusinessType, profile)
		metrics.RecordStageLatency("media", float64(time.Since(stageStart).Milliseconds()))
		return nil
	})
	g.Go(func() error {
		stageStart := time.Now()
		pkg = p.content.Enhance(gctx, job.Business, cls, profile)
		metrics.RecordStageLatency("content", float64(time.Since(stageStart).Milliseconds()))
		return nil
	})
	_ = g.Wait()

	metrics.RecordMediaCacheHits(sourced.CacheHits)
	metrics.RecordPlaceholderFills(sourced.PlaceholderCount)
	if pkg.Degraded {
		metrics.RecordContentDegraded()
	}
	return sourced, pkg
}

// repair re-runs media sourcing once, rebuilds and re-checks. Findings the
// pass fixed stay on the report flagged as repaired, for audit.
func (p *Pipeline) repair(
	ctx context.Context,
	job model.SynthesisJob,
	cls model.ClassificationResult,
	profile design.Profile,
	pkg model.ContentPackage,
	prevDoc model.Structure,
	prevSourced media.Result,
	before model.ValidationReport,
) (model.Structure, media.Result, model.ValidationReport) {
	metrics.RecordRepairPass()
	p.logger.Info(ctx, "running repair pass",
		logger.String("businessID", job.Business.ID),
		logger.Int("findings", len(before.Findings)),
	)

	sourced := p.media.Source(ctx, cls.BusinessType, profile)
	metrics.RecordMediaCacheHits(sourced.CacheHits)
	metrics.RecordPlaceholderFills(sourced.PlaceholderCount)

	doc, err := p.assembler.Build(profile, pkg, sourced.Images, sourced.HeroVideo)
	if err != nil {
		// The profile did not change, so a rebuild cannot newly lose its
		// sections. Keep the pre-repair artifact if it somehow does.
		return prevDoc, prevSourced, before
	}

	after := p.checker.Check(doc, profile)
	return doc, sourced, reconcile(before, after)
}

// reconcile merges the pre- and post-repair reports: surviving findings stay
// live, and findings the repair cleared are kept with Repaired set.
func reconcile(before, after model.ValidationReport) model.ValidationReport {
	still := make(map[string]bool, len(after.Findings))
	for _, f := range after.Findings {
		still[f.Check] = true
	}

	merged := after
	for _, f := range before.Findings {
		if !still[f.Check] {
			f.Repaired = true
			merged.Findings = append(merged.Findings, f)
		}
	}
	return merged
}

// needsRepair reports whether any finding can be fixed by re-running its
// producing component.
func needsRepair(report model.ValidationReport) bool {
	for _, f := range report.Findings {
		if validate.Repairable(f) {
			return true
		}
	}
	return false
}

// unrepaired counts findings still standing after any repair pass.
func unrepaired(report model.ValidationReport) int {
	n := 0
	for _, f := range report.Findings {
		if !f.Repaired {
			n++
		}
	}
	return n
}
