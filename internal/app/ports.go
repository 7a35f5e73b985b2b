package app

import (
	"context"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

type GenerateModularUseCase interface {
	GenerateModular(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type GenerateActivitiesUseCase interface {
	GenerateActivities(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type GenerateSequenceUseCase interface {
	GenerateSequence(ctx context.Context, req GenerateRequest, lessonCount int) (*SequenceResponse, error)
}

type ArchiveLessonUseCase interface {
	Save(ctx context.Context, grade string, c *domain.Candidate) (*domain.ArchivedLesson, error)
	SaveSequence(ctx context.Context, grade string, seq *SequenceResponse) ([]*domain.ArchivedLesson, error)
}
