package app

import (
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequest_DurationLimit(t *testing.T) {
	req := NewGenerateRequest("5학년", "피구", "체육관")
	assert.Equal(t, 40, req.DurationLimit())

	req.DurationMin = 80
	assert.Equal(t, DurationCeilingMin, req.DurationLimit())

	req.DurationMin = 0
	assert.Equal(t, DurationCeilingMin, req.DurationLimit())
}

func TestClampLessonCount(t *testing.T) {
	assert.Equal(t, 2, ClampLessonCount(0))
	assert.Equal(t, 3, ClampLessonCount(3))
	assert.Equal(t, 5, ClampLessonCount(9))
}

func TestPhaseForLesson(t *testing.T) {
	want := []domain.Phase{domain.PhaseBasic, domain.PhaseBasic, domain.PhaseApplied, domain.PhaseChallenge, domain.PhaseChallenge}
	for i, phase := range want {
		assert.Equal(t, phase, PhaseForLesson(i+1), "lesson %d", i+1)
	}
}

func TestGenerationError_Message(t *testing.T) {
	err := &GenerationError{Code: ErrInvalidDuration, Message: "duration must be positive"}
	assert.Equal(t, "INVALID_DURATION: duration must be positive", err.Error())
}
