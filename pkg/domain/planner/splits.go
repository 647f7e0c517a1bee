package planner

import (
	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/profile"
)

// dayFocus names a training day template and the muscle groups it draws
// from, in priority order.
type dayFocus struct {
	name   string
	groups []catalog.MuscleGroup
}

// ---------------------------------------------------------------------------
// Focus templates
// ---------------------------------------------------------------------------

var (
	focusPush = dayFocus{"Push", []catalog.MuscleGroup{
		catalog.GroupChest, catalog.GroupShoulders, catalog.GroupTriceps,
	}}
	focusPull = dayFocus{"Pull", []catalog.MuscleGroup{
		catalog.GroupBack, catalog.GroupBiceps, catalog.GroupForearms,
	}}
	focusLegs = dayFocus{"Legs", []catalog.MuscleGroup{
		catalog.GroupQuads, catalog.GroupHamstrings, catalog.GroupGlutes, catalog.GroupCalves,
	}}
	focusUpper = dayFocus{"Upper Body", []catalog.MuscleGroup{
		catalog.GroupChest, catalog.GroupBack, catalog.GroupShoulders, catalog.GroupBiceps, catalog.GroupTriceps,
	}}
	focusLower = dayFocus{"Lower Body", []catalog.MuscleGroup{
		catalog.GroupQuads, catalog.GroupHamstrings, catalog.GroupGlutes, catalog.GroupCalves, catalog.GroupCore,
	}}
	focusFullBody = dayFocus{"Full Body", []catalog.MuscleGroup{
		catalog.GroupChest, catalog.GroupBack, catalog.GroupQuads, catalog.GroupShoulders, catalog.GroupCore,
	}}
	focusConditioning = dayFocus{"Conditioning", []catalog.MuscleGroup{
		catalog.GroupCardio, catalog.GroupFullBody, catalog.GroupCore,
	}}
)

// ---------------------------------------------------------------------------
// Split rotations
// ---------------------------------------------------------------------------

// defaultSplits maps training days per week to a rotation of day
// templates. splitFor applies per-goal overrides on top.
var defaultSplits = map[int][]dayFocus{
	1: {focusFullBody},
	2: {focusUpper, focusLower},
	3: {focusFullBody, focusFullBody, focusFullBody},
	4: {focusUpper, focusLower, focusUpper, focusLower},
	5: {focusPush, focusPull, focusLegs, focusUpper, focusLower},
	6: {focusPush, focusPull, focusLegs, focusPush, focusPull, focusLegs},
	7: {focusPush, focusPull, focusLegs, focusUpper, focusLower, focusFullBody, focusConditioning},
}

// goalSplits overrides the rotation for goals with a distinct training
// emphasis at a given frequency.
var goalSplits = map[profile.Goal]map[int][]dayFocus{
	profile.GoalStrength: {
		3: {focusPush, focusPull, focusLegs},
		4: {focusLower, focusUpper, focusLower, focusUpper},
	},
	profile.GoalMuscleGain: {
		3: {focusPush, focusPull, focusLegs},
		4: {focusPush, focusPull, focusLegs, focusFullBody},
		5: {focusPush, focusPull, focusLegs, focusUpper, focusLower},
	},
	profile.GoalWeightLoss: {
		2: {focusFullBody, focusConditioning},
		3: {focusFullBody, focusConditioning, focusFullBody},
		4: {focusFullBody, focusConditioning, focusFullBody, focusConditioning},
		5: {focusFullBody, focusConditioning, focusFullBody, focusConditioning, focusFullBody},
	},
	profile.GoalEndurance: {
		3: {focusFullBody, focusConditioning, focusLower},
		4: {focusUpper, focusConditioning, focusLower, focusConditioning},
	},
}

// splitFor returns the day rotation for the given frequency and goal.
func splitFor(days int, goal profile.Goal) []dayFocus {
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}
	if byDays, ok := goalSplits[goal]; ok {
		if split, ok := byDays[days]; ok {
			return split
		}
	}
	return defaultSplits[days]
}

// ---------------------------------------------------------------------------
// Weekday placement
// ---------------------------------------------------------------------------

// weekdayPatterns places N training days into the week with recovery
// gaps where frequency allows. Weekdays are 1 (Monday) through 7
// (Sunday).
var weekdayPatterns = map[int][]int{
	1: {3},
	2: {1, 4},
	3: {1, 3, 5},
	4: {1, 2, 4, 5},
	5: {1, 2, 3, 5, 6},
	6: {1, 2, 3, 4, 5, 6},
	7: {1, 2, 3, 4, 5, 6, 7},
}

// trainingWeekdays returns the weekday numbers for a given frequency.
func trainingWeekdays(days int) []int {
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}
	return weekdayPatterns[days]
}

// ---------------------------------------------------------------------------
// Session volume
// ---------------------------------------------------------------------------

// exercisesPerDay sizes a session by experience, nudged by goal.
// Strength sessions run fewer, heavier movements.
func exercisesPerDay(goal profile.Goal, level profile.Level) int {
	n := 5
	switch level {
	case profile.LevelBeginner:
		n = 4
	case profile.LevelAdvanced:
		n = 6
	}
	if goal == profile.GoalStrength && n > 4 {
		n--
	}
	return n
}
