package app

import "github.com/alexanderramin/lessonsmith/internal/domain"

const (
	DefaultMaxCandidates = 20
	// DurationCeilingMin caps every lesson activity regardless of the request.
	DurationCeilingMin = 50
)

// GenerateRequest describes the lesson a teacher is planning.
type GenerateRequest struct {
	Grade              string
	Sport              string
	Space              string
	FMSFocus           []string
	SportSkills        []string
	DurationMin        int
	AvailableEquipment []string
	WeatherFilter      string
	// LessonHistory holds titles of earlier lessons, used to penalize repeats.
	LessonHistory         []string
	PreferredPhase        domain.Phase
	PreferredStructureIDs []string
	// ExcludedStructureIDs holds structure or activity ids to avoid. The
	// exclusion is soft: items are dropped only while others remain.
	ExcludedStructureIDs []string
	MaxCandidates        int
}

// NewGenerateRequest returns a request with the defaults the UI uses.
func NewGenerateRequest(grade, sport, space string) GenerateRequest {
	return GenerateRequest{
		Grade:         grade,
		Sport:         sport,
		Space:         space,
		DurationMin:   40,
		MaxCandidates: DefaultMaxCandidates,
	}
}

// Location is the request space under the name the validator uses.
func (r GenerateRequest) Location() string {
	return r.Space
}

// DurationLimit is min(DurationMin, 50). A non-positive DurationMin means
// only the ceiling applies.
func (r GenerateRequest) DurationLimit() int {
	if r.DurationMin <= 0 || r.DurationMin > DurationCeilingMin {
		return DurationCeilingMin
	}
	return r.DurationMin
}

// GenerationMeta explains how a generation call went, including why it
// produced nothing.
type GenerationMeta struct {
	Engine            domain.Engine  `json:"engine"`
	Attempts          int            `json:"attempts"`
	Pool              PoolSizes      `json:"pool"`
	TopFailureReasons []FailureCount `json:"topFailureReasons"`
	Reason            string         `json:"reason,omitempty"`
}

type GenerateResponse struct {
	Candidates []*domain.Candidate `json:"candidates"`
	Meta       GenerationMeta      `json:"meta"`
}
