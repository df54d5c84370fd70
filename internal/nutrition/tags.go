package nutrition

import (
	"slices"

	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
)

// Thresholds that add preference tags.
const (
	calmingStressThreshold    = 6.0
	heartHealthyRateThreshold = 95.0
)

var ageGroupTags = map[AgeGroup]string{
	AgeChild:   types.TagKidFriendly,
	AgeTeen:    types.TagHighEnergy,
	AgeAdult:   types.TagBalanced,
	AgeElderly: types.TagLight,
}

// BuildPreferenceTags derives the preference tags for a request. Rules
// accumulate and duplicates collapse.
func BuildPreferenceTags(group AgeGroup, profile occupation.Profile, stress, heartRate float64, conditions []string) types.TagSet {
	tags := types.NewTagSet(types.TagEasy, types.TagBudget, types.TagQuick)
	tags.Add(ageGroupTags[group])

	switch profile.ActivityLevel {
	case occupation.ActivityActive, occupation.ActivityVeryActive:
		tags.Add(types.TagHighEnergy)
	case occupation.ActivitySedentary:
		tags.Add(types.TagLight)
	}

	if stress > calmingStressThreshold {
		tags.Add(types.TagCalming)
	}
	if heartRate > heartHealthyRateThreshold {
		tags.Add(types.TagHeartHealthy)
	}
	if slices.Contains(conditions, types.ConditionDiabetes) {
		tags.Add(types.TagLowSugar)
	}
	if slices.Contains(conditions, types.ConditionHypertension) {
		tags.Add(types.TagLowSodium)
	}
	return tags
}
