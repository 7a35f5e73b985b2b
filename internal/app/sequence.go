package app

import "github.com/alexanderramin/lessonsmith/internal/domain"

const (
	MinSequenceLessons = 2
	MaxSequenceLessons = 5
)

// ClampLessonCount bounds a requested lesson count to [2, 5].
func ClampLessonCount(n int) int {
	if n < MinSequenceLessons {
		return MinSequenceLessons
	}
	if n > MaxSequenceLessons {
		return MaxSequenceLessons
	}
	return n
}

// PhaseForLesson maps a 1-based lesson number to its curriculum phase:
// lessons 1-2 basic, 3 applied, 4-5 challenge.
func PhaseForLesson(lessonNumber int) domain.Phase {
	switch {
	case lessonNumber <= 2:
		return domain.PhaseBasic
	case lessonNumber == 3:
		return domain.PhaseApplied
	default:
		return domain.PhaseChallenge
	}
}

type SequenceLesson struct {
	LessonNumber  int               `json:"lessonNumber"`
	Phase         domain.Phase      `json:"phase"`
	Candidate     *domain.Candidate `json:"candidate"`
	Engine        domain.Engine     `json:"engine,omitempty"`
	FailureReason string            `json:"failureReason,omitempty"`
}

type SequenceMeta struct {
	RequestedLessons int `json:"requestedLessons"`
	FilledLessons    int `json:"filledLessons"`
	// ReusedFallbacks counts lessons that had to reuse a title or structure
	// because no unused candidate existed.
	ReusedFallbacks int `json:"reusedFallbacks"`
}

type SequenceResponse struct {
	Lessons    []SequenceLesson `json:"lessons"`
	SequenceID string           `json:"sequenceId"`
	Meta       SequenceMeta     `json:"meta"`
}
