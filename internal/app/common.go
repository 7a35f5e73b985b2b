package app

// Diagnostic strings returned in GenerationMeta.Reason. They are shown to
// teachers as-is, so they stay in Korean.
const (
	ReasonUnsupportedSport = "지원하지 않는 종목: %s"
	ReasonUnsupportedGrade = "지원하지 않는 학년: %s"
	ReasonNoModularPairs   = "조건에 맞는 구조-기술 조합이 없습니다"
	ReasonNoActivities     = "조건에 맞는 활동이 없습니다"
	ReasonNoValidCandidate = "유효한 후보를 생성하지 못했습니다"
	ReasonRenderFailed     = "템플릿 렌더링 실패: 필수 섹션 누락"
)

// FailureCount tallies how often a validation failure string occurred.
type FailureCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// PoolSizes reports how many catalog items survived compatibility filtering.
type PoolSizes struct {
	Structures int `json:"structures"`
	Skills     int `json:"skills"`
	Modifiers  int `json:"modifiers"`
	Activities int `json:"activities"`
	Drafts     int `json:"drafts"`
}

type GenerationErrorCode string

const (
	ErrInvalidDuration    GenerationErrorCode = "INVALID_DURATION"
	ErrInvalidLessonCount GenerationErrorCode = "INVALID_LESSON_COUNT"
	ErrInvalidEngine      GenerationErrorCode = "INVALID_ENGINE"
	ErrCatalogUnavailable GenerationErrorCode = "CATALOG_UNAVAILABLE"
)

// GenerationError reports a request the host refuses before generation. The
// engine itself never fails; it explains empty results through the meta.
type GenerationError struct {
	Code    GenerationErrorCode
	Message string
}

func (e *GenerationError) Error() string {
	return string(e.Code) + ": " + e.Message
}
