package textmatch

import (
	"regexp"
	"strings"
)

// equipmentAliases maps normalized equipment names to their canonical form.
// Hand-curated; extend by adding entries rather than changing matching rules.
var equipmentAliases = map[string]string{
	"팀조끼":   "조끼",
	"번호조끼":  "조끼",
	"팀구분조끼": "조끼",
	"마커콘":   "콘",
	"라인콘":   "콘",
	"접시콘":   "콘",
	"꼬깔콘":   "콘",
	"고깔":    "콘",
	"라바콘":   "콘",
	"훌라후프":  "후프",
	"링":     "후프",
	"줄넘기줄":  "줄넘기",
	"긴줄":    "긴줄넘기",
	"호루라기":  "휘슬",
	"호각":    "휘슬",
	"소프트공":  "말랑공",
	"스펀지공":  "말랑공",
	"폼볼":    "말랑공",
	"매트":    "매트",
	"안전매트":  "매트",
	"타이머":   "스톱워치",
	"초시계":   "스톱워치",
}

// fmsAliases maps normalized movement-skill names to a canonical FMS label.
var fmsAliases = map[string]string{
	"던지기":  "던지기",
	"패스":   "던지기",
	"송구":   "던지기",
	"받기":   "받기",
	"캐치":   "받기",
	"포구":   "받기",
	"차기":   "차기",
	"킥":    "차기",
	"슈팅":   "차기",
	"튀기기":  "튀기기",
	"드리블":  "튀기기",
	"달리기":  "달리기",
	"질주":   "달리기",
	"피하기":  "피하기",
	"회피":   "피하기",
	"방향전환": "피하기",
	"뛰기":   "뛰기",
	"점프":   "뛰기",
	"도약":   "뛰기",
	"균형잡기": "균형잡기",
	"균형":   "균형잡기",
	"멈추기":  "균형잡기",
}

var alternativeSeparator = regexp.MustCompile(`\s*(?:/|또는|\bor\b)\s*`)

// penaltyTypeMarkers covers the historical labels used for penalty or
// mission modifier types.
var penaltyTypeMarkers = []string{"벌칙", "미션", "penalty", "mission", "페널티"}

// CanonicalEquipment returns the canonical name of an equipment item.
func CanonicalEquipment(item string) string {
	n := Normalize(item)
	if c, ok := equipmentAliases[n]; ok {
		return c
	}
	return n
}

// CanonicalFMS returns the canonical FMS label for a skill name.
func CanonicalFMS(name string) string {
	n := Normalize(name)
	if c, ok := fmsAliases[n]; ok {
		return c
	}
	return n
}

// Alternatives splits an equipment requirement such as "피구공 또는 공" or
// "콘/접시콘" into its interchangeable options.
func Alternatives(item string) []string {
	parts := alternativeSeparator.Split(strings.TrimSpace(item), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsPenaltyType reports whether a modifier type denotes a penalty or mission.
func IsPenaltyType(modifierType string) bool {
	n := Normalize(modifierType)
	if n == "" {
		return false
	}
	for _, marker := range penaltyTypeMarkers {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}

// EquipmentSatisfied reports whether required can be met from available.
// Alternatives are tried in order; aliases are canonicalized; a generic
// "공" is satisfied by the sport-specific ball (e.g. "축구공" for 축구).
func EquipmentSatisfied(required string, available []string, sportName string) bool {
	have := make(map[string]bool, len(available))
	for _, a := range available {
		have[CanonicalEquipment(a)] = true
	}
	sportBall := CanonicalEquipment(sportName + "공")
	for _, alt := range Alternatives(required) {
		c := CanonicalEquipment(alt)
		if have[c] {
			return true
		}
		if c == "공" && sportName != "" && have[sportBall] {
			return true
		}
	}
	return false
}

// MissingEquipment returns the required items that cannot be met from
// available. An empty available list means no constraint was communicated
// and nothing is reported missing.
func MissingEquipment(required, available []string, sportName string) []string {
	if len(available) == 0 {
		return nil
	}
	var missing []string
	for _, r := range required {
		if !EquipmentSatisfied(r, available, sportName) {
			missing = append(missing, r)
		}
	}
	return missing
}

// FMSMatches reports whether a requested FMS focus matches a candidate tag,
// either by soft substring or by shared canonical label.
func FMSMatches(focus, tag string) bool {
	if SoftContains(focus, tag) {
		return true
	}
	cf, ct := CanonicalFMS(focus), CanonicalFMS(tag)
	return cf != "" && cf == ct
}
