package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/domain"
)

type catalogService struct {
	catalog  *catalog.Catalog
	observer UseCaseObserver
}

func NewCatalogService(cat *catalog.Catalog, observers ...UseCaseObserver) CatalogService {
	return &catalogService{catalog: cat, observer: useCaseObserverOrNoop(observers)}
}

func (s *catalogService) Sports(context.Context) []domain.Sport {
	return s.catalog.Sports()
}

func (s *catalogService) Grades(context.Context) []domain.GradeConfig {
	return s.catalog.Grades()
}

func (s *catalogService) Structures(context.Context) []domain.Structure {
	return s.catalog.Structures()
}

func (s *catalogService) Modifiers(context.Context) []domain.Modifier {
	return s.catalog.Modifiers()
}

func (s *catalogService) Activities(context.Context) []domain.Activity {
	return s.catalog.Activities()
}

func (s *catalogService) Validate(ctx context.Context) []error {
	startedAt := time.Now().UTC()
	errs := catalog.Validate(s.catalog)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "validate-catalog",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   len(errs) == 0,
		Fields: map[string]any{
			"problems":   len(errs),
			"structures": len(s.catalog.Structures()),
			"modifiers":  len(s.catalog.Modifiers()),
		},
	})
	return errs
}
