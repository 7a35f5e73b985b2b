package service

import (
	"context"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
)

type GenerationService interface {
	app.GenerateModularUseCase
	app.GenerateActivitiesUseCase
	app.GenerateSequenceUseCase
	// Generate dispatches to the named engine.
	Generate(ctx context.Context, engine domain.Engine, req app.GenerateRequest) (*app.GenerateResponse, error)
}

type ArchiveService interface {
	app.ArchiveLessonUseCase
	GetByID(ctx context.Context, id string) (*domain.ArchivedLesson, error)
	List(ctx context.Context, limit int) ([]*domain.ArchivedLesson, error)
	ListSequence(ctx context.Context, sequenceID string) ([]*domain.ArchivedLesson, error)
	Delete(ctx context.Context, id string) error
	DeleteSequence(ctx context.Context, sequenceID string) error
}

type CatalogService interface {
	Sports(ctx context.Context) []domain.Sport
	Grades(ctx context.Context) []domain.GradeConfig
	Structures(ctx context.Context) []domain.Structure
	Modifiers(ctx context.Context) []domain.Modifier
	Activities(ctx context.Context) []domain.Activity
	// Validate reports every integrity problem in the loaded catalog.
	Validate(ctx context.Context) []error
}
