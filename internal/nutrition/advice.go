package nutrition

import (
	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
)

func (e *Engine) occupationAdvice(profile occupation.Profile, gender string, stress float64) types.OccupationAdvice {
	recs := profile.Recommendations
	if len(recs) == 0 {
		recs = e.occupations.GeneralRecommendations()
	}

	advice := e.catalog.Advice()
	var genderAdvice []string
	switch gender {
	case types.GenderFemale:
		genderAdvice = advice.Female
	case types.GenderMale:
		genderAdvice = advice.Male
	default:
		genderAdvice = []string{}
	}

	out := types.OccupationAdvice{
		OccupationConcerns:   profile.Concerns,
		Recommendations:      recs,
		GenderSpecificAdvice: genderAdvice,
	}
	if stress > stressManagementThreshold {
		out.StressManagement = advice.StressManagement
	}
	return out
}
