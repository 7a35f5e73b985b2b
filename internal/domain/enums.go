package domain

// Phase is a curriculum progression stage. Grades allow a subset of phases,
// and structures, activities, and modifiers each declare the phase they suit.
type Phase string

const (
	PhaseBasic     Phase = "기본"
	PhaseApplied   Phase = "응용"
	PhaseChallenge Phase = "챌린지"
)

// ValidPhases is the canonical set of accepted phase strings.
var ValidPhases = map[Phase]bool{
	PhaseBasic:     true,
	PhaseApplied:   true,
	PhaseChallenge: true,
}

type DifficultyLabel string

const (
	DifficultyEasy      DifficultyLabel = "쉬움"
	DifficultyMedium    DifficultyLabel = "중간"
	DifficultyChallenge DifficultyLabel = "도전"
)

// DifficultyForLevel maps a clamped 1..3 level to its label.
func DifficultyForLevel(level int) DifficultyLabel {
	switch {
	case level <= 1:
		return DifficultyEasy
	case level == 2:
		return DifficultyMedium
	default:
		return DifficultyChallenge
	}
}

// Engine names the candidate source that produced a candidate.
type Engine string

const (
	EngineModular  Engine = "modular"
	EngineActivity Engine = "activity"
)
