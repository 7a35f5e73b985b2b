package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/engine"
	"github.com/alexanderramin/lessonsmith/internal/repository"
)

// GenerationConfig tunes the generation service.
type GenerationConfig struct {
	// Seed fixes the RNG for every call. Zero derives a seed from the clock.
	Seed int64
	// ArchiveHistory is how many archived titles to add to each request's
	// lesson history. Zero disables archive lookups.
	ArchiveHistory int
}

type generationService struct {
	catalog  *catalog.Catalog
	archive  repository.LessonArchiveRepo
	cfg      GenerationConfig
	observer UseCaseObserver
}

// NewGenerationService builds a generator per call, so the service is safe
// for concurrent use. archive may be nil when no lesson archive is open.
func NewGenerationService(
	cat *catalog.Catalog,
	archive repository.LessonArchiveRepo,
	cfg GenerationConfig,
	observers ...UseCaseObserver,
) GenerationService {
	return &generationService{
		catalog:  cat,
		archive:  archive,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *generationService) GenerateModular(ctx context.Context, req app.GenerateRequest) (*app.GenerateResponse, error) {
	return s.Generate(ctx, domain.EngineModular, req)
}

func (s *generationService) GenerateActivities(ctx context.Context, req app.GenerateRequest) (*app.GenerateResponse, error) {
	return s.Generate(ctx, domain.EngineActivity, req)
}

func (s *generationService) Generate(ctx context.Context, eng domain.Engine, req app.GenerateRequest) (resp *app.GenerateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"engine": string(eng),
		"sport":  req.Sport,
		"grade":  req.Grade,
	}
	defer func() {
		if resp != nil {
			observeMeta(fields, resp.Meta, len(resp.Candidates))
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	src, ok := engine.SourceFor(eng)
	if !ok {
		return nil, &app.GenerationError{Code: app.ErrInvalidEngine, Message: fmt.Sprintf("unknown engine %q", eng)}
	}
	if req, err = s.prepare(ctx, req); err != nil {
		return nil, err
	}

	out := s.generator().Generate(req, src)
	return &out, nil
}

func (s *generationService) GenerateSequence(ctx context.Context, req app.GenerateRequest, lessonCount int) (resp *app.SequenceResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"sport":   req.Sport,
		"grade":   req.Grade,
		"lessons": lessonCount,
	}
	defer func() {
		if resp != nil {
			fields["sequence_id"] = resp.SequenceID
			fields["filled"] = resp.Meta.FilledLessons
			fields["reused"] = resp.Meta.ReusedFallbacks
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-sequence",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if lessonCount <= 0 {
		return nil, &app.GenerationError{
			Code:    app.ErrInvalidLessonCount,
			Message: fmt.Sprintf("lesson count must be positive, got %d", lessonCount),
		}
	}
	if req, err = s.prepare(ctx, req); err != nil {
		return nil, err
	}

	out := s.generator().GenerateSequence(req, lessonCount)
	return &out, nil
}

// prepare rejects malformed requests and merges archived titles into the
// lesson history.
func (s *generationService) prepare(ctx context.Context, req app.GenerateRequest) (app.GenerateRequest, error) {
	if err := ctx.Err(); err != nil {
		return req, err
	}
	if s.catalog == nil {
		return req, &app.GenerationError{Code: app.ErrCatalogUnavailable, Message: "no catalog loaded"}
	}
	if req.DurationMin < 0 {
		return req, &app.GenerationError{
			Code:    app.ErrInvalidDuration,
			Message: fmt.Sprintf("duration must not be negative, got %d", req.DurationMin),
		}
	}
	if s.archive == nil || s.cfg.ArchiveHistory <= 0 {
		return req, nil
	}

	titles, err := s.archive.RecentTitles(ctx, s.cfg.ArchiveHistory)
	if err != nil {
		return req, fmt.Errorf("loading lesson history: %w", err)
	}
	req.LessonHistory = append(append([]string(nil), req.LessonHistory...), titles...)
	return req, nil
}

func (s *generationService) generator() *engine.Generator {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return engine.NewGenerator(s.catalog, rand.New(rand.NewSource(seed)))
}

func observeMeta(fields map[string]any, meta app.GenerationMeta, candidates int) {
	fields["attempts"] = meta.Attempts
	fields["candidates"] = candidates
	if meta.Reason != "" {
		fields["reason"] = meta.Reason
	}
	if len(meta.TopFailureReasons) > 0 {
		fields["top_failure"] = meta.TopFailureReasons[0].Reason
	}
}
