package cli

import (
	"fmt"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/spf13/pflag"
)

// requestFlags are the request-shaping flags shared by generate and sequence.
type requestFlags struct {
	grade      string
	sport      string
	space      string
	duration   int
	fms        []string
	skills     []string
	equipment  []string
	history    []string
	phase      string
	structures []string
	exclude    []string
	max        int
	jsonOut    bool
	useArchive bool
}

func (rf *requestFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&rf.grade, "grade", "", "Grade, e.g. 5학년 (default from config)")
	fs.StringVar(&rf.sport, "sport", "", "Sport id or name")
	fs.StringVar(&rf.space, "space", "", "Space, e.g. 체육관 (default from config)")
	fs.IntVar(&rf.duration, "duration", 0, "Lesson minutes (default from config)")
	fs.StringSliceVar(&rf.fms, "fms", nil, "FMS focus, comma separated")
	fs.StringSliceVar(&rf.skills, "skill", nil, "Sport skills to narrow to")
	fs.StringSliceVar(&rf.equipment, "equipment", nil, "Available equipment; empty skips the equipment check")
	fs.StringSliceVar(&rf.history, "history", nil, "Titles of earlier lessons")
	fs.StringVar(&rf.phase, "phase", "", "Preferred phase: 기본, 응용, 챌린지")
	fs.StringSliceVar(&rf.structures, "structure", nil, "Preferred structure ids")
	fs.StringSliceVar(&rf.exclude, "exclude", nil, "Structure or activity ids to avoid")
	fs.IntVar(&rf.max, "max", 0, "Maximum candidates (default from config)")
	fs.BoolVar(&rf.jsonOut, "json", false, "Print JSON instead of cards")
	fs.BoolVar(&rf.useArchive, "use-archive", false, "Add archived lesson titles to history")
}

// request builds a GenerateRequest, filling unset fields from the app defaults.
func (rf *requestFlags) request(a *App) (app.GenerateRequest, error) {
	if rf.sport == "" {
		return app.GenerateRequest{}, fmt.Errorf("--sport is required")
	}
	if rf.phase != "" && !domain.ValidPhases[domain.Phase(rf.phase)] {
		return app.GenerateRequest{}, fmt.Errorf("invalid phase %q", rf.phase)
	}
	if rf.duration < 0 {
		return app.GenerateRequest{}, fmt.Errorf("invalid duration %d", rf.duration)
	}

	req := app.NewGenerateRequest(
		domain.CoalesceStr(rf.grade, a.Defaults.Grade),
		rf.sport,
		domain.CoalesceStr(rf.space, a.Defaults.Space),
	)
	req.DurationMin = domain.IntOrDefault(rf.duration, domain.IntOrDefault(a.Defaults.DurationMin, req.DurationMin))
	req.MaxCandidates = domain.IntOrDefault(rf.max, domain.IntOrDefault(a.MaxCandidates, req.MaxCandidates))
	req.FMSFocus = rf.fms
	req.SportSkills = rf.skills
	req.AvailableEquipment = rf.equipment
	req.LessonHistory = rf.history
	req.PreferredPhase = domain.Phase(rf.phase)
	req.PreferredStructureIDs = rf.structures
	req.ExcludedStructureIDs = rf.exclude
	return req, nil
}
