package compiler

import (
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/template"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// SlotCompatibility reports how well a skill fills a structure's slots.
type SlotCompatibility struct {
	Compatible      bool
	MissingRequired []string
	MissingOptional []string
	// Coverage is the fraction of required slots the skill supplies.
	Coverage float64
}

// RequiredSlots returns the structure's required slots. Structures authored
// without slot keys require every slot their flow mentions.
func RequiredSlots(st domain.Structure) []string {
	if st.SlotKeys == nil {
		return template.ExtractSlots(st.Flow)
	}
	return st.SlotKeys.Required
}

// CheckSlotCompatibility decides whether sk can fill st. A pairing is
// compatible iff every required slot is a key of the skill's slot mapping.
func CheckSlotCompatibility(st domain.Structure, sk domain.Skill) SlotCompatibility {
	required := RequiredSlots(st)
	res := SlotCompatibility{Coverage: 1}

	present := 0
	for _, slot := range required {
		if hasSlot(sk, slot) {
			present++
		} else {
			res.MissingRequired = append(res.MissingRequired, slot)
		}
	}
	if st.SlotKeys != nil {
		for _, slot := range st.SlotKeys.Optional {
			if !hasSlot(sk, slot) {
				res.MissingOptional = append(res.MissingOptional, slot)
			}
		}
	}
	if len(required) > 0 {
		res.Coverage = float64(present) / float64(len(required))
	}
	res.Compatible = len(res.MissingRequired) == 0
	return res
}

// FMSCompatible reports whether the skill's FMS category is one the
// structure accepts. Structures that list no categories accept any skill.
func FMSCompatible(st domain.Structure, sk domain.Skill) bool {
	if len(st.CompatibleFMSCategories) == 0 || sk.FMSCategory == "" {
		return true
	}
	return textmatch.ContainsEqual(st.CompatibleFMSCategories, sk.FMSCategory)
}

func hasSlot(sk domain.Skill, slot string) bool {
	_, ok := sk.SlotMapping[slot]
	return ok
}
