package domain

import "time"

// ArchivedLesson is a candidate a teacher kept. Archived titles feed the
// lesson history used for duplicate avoidance.
type ArchivedLesson struct {
	ID           string
	Title        string
	Sport        string
	Grade        string
	Engine       Engine
	StructureID  string
	ActivityID   string
	Score        int
	SequenceID   *string
	LessonNumber *int
	// Body is the rendered card at the time of saving.
	Body      string
	CreatedAt time.Time
}
