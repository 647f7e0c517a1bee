package file_generators

import (
	"strings"

	"github.com/muktihari/fit/profile/typedef"
)

// categoryKeywords maps exercise-name keywords to FIT exercise
// categories. Matched in order, so more specific phrases come before
// the generic ones they contain.
var categoryKeywords = []struct {
	keyword  string
	category typedef.ExerciseCategory
}{
	{"bench press", typedef.ExerciseCategoryBenchPress},
	{"chest press", typedef.ExerciseCategoryBenchPress},
	{"push-up", typedef.ExerciseCategoryPushUp},
	{"push up", typedef.ExerciseCategoryPushUp},
	{"fly", typedef.ExerciseCategoryFlye},
	{"deadlift", typedef.ExerciseCategoryDeadlift},
	{"row", typedef.ExerciseCategoryRow},
	{"pull-up", typedef.ExerciseCategoryPullUp},
	{"pull up", typedef.ExerciseCategoryPullUp},
	{"chin-up", typedef.ExerciseCategoryPullUp},
	{"pulldown", typedef.ExerciseCategoryPullUp},
	{"squat", typedef.ExerciseCategorySquat},
	{"lunge", typedef.ExerciseCategoryLunge},
	{"leg press", typedef.ExerciseCategorySquat},
	{"leg curl", typedef.ExerciseCategoryLegCurl},
	{"leg extension", typedef.ExerciseCategoryLegCurl},
	{"leg raise", typedef.ExerciseCategoryLegRaise},
	{"calf raise", typedef.ExerciseCategoryCalfRaise},
	{"shoulder press", typedef.ExerciseCategoryShoulderPress},
	{"overhead press", typedef.ExerciseCategoryShoulderPress},
	{"lateral raise", typedef.ExerciseCategoryLateralRaise},
	{"front raise", typedef.ExerciseCategoryLateralRaise},
	{"face pull", typedef.ExerciseCategoryRow},
	{"shrug", typedef.ExerciseCategoryShrug},
	{"curl", typedef.ExerciseCategoryCurl},
	{"extension", typedef.ExerciseCategoryTricepsExtension},
	{"dip", typedef.ExerciseCategoryTricepsExtension},
	{"plank", typedef.ExerciseCategoryPlank},
	{"crunch", typedef.ExerciseCategoryCrunch},
	{"sit-up", typedef.ExerciseCategorySitUp},
	{"sit up", typedef.ExerciseCategorySitUp},
	{"hip thrust", typedef.ExerciseCategoryHipRaise},
	{"glute bridge", typedef.ExerciseCategoryHipRaise},
	{"carry", typedef.ExerciseCategoryCarry},
	{"run", typedef.ExerciseCategoryRun},
	{"jump", typedef.ExerciseCategoryPlyo},
	{"burpee", typedef.ExerciseCategoryTotalBody},
	{"mountain climber", typedef.ExerciseCategoryTotalBody},
}

// MapExerciseToCategory maps an exercise name to the closest FIT
// exercise category, falling back to a generic one when nothing
// matches.
func MapExerciseToCategory(exerciseName string) typedef.ExerciseCategory {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	for _, entry := range categoryKeywords {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}
	return typedef.ExerciseCategoryUnknown
}
