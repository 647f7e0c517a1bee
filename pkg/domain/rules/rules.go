// Package rules is the expert overlay on top of model predictions:
// baseline estimation when no model is available, goal adjustments,
// safety clamping, injury/equipment substitution, and week-over-week
// progressive overload. Rule application never fails; the worst outcome
// for a slot is omission with a recorded reason.
package rules

import (
	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/predictor"
	"github.com/fitglue/planner/pkg/domain/profile"
)

// Safety bounds for the five workout parameters. Clamping saturates,
// it never rejects.
const (
	MinSets      = 1
	MaxSets      = 7
	MinReps      = 1
	MaxReps      = 20
	MinIntensity = 48.0
	MaxIntensity = 95.0
	MinWeight    = 0.0
	MaxWeight    = 14.0
	MinRPE       = 5.0
	MaxRPE       = 10.0
)

// Progressive overload increments per week beyond the first. RPE rises
// with intensity through a fixed linear coupling; sets and reps are not
// auto-progressed.
const (
	IntensityPerWeek = 2.0
	WeightPerWeek    = 0.5
	RPEPerWeek       = RPEPerIntensity * IntensityPerWeek
	RPEPerIntensity  = 0.1
)

// Engine applies the expert rules against a fixed catalog. Stateless
// beyond its read-only tables; safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// baselineKey indexes the fallback table by goal and level.
type baselineKey struct {
	goal  profile.Goal
	level profile.Level
}

// baselineTable is the deterministic fallback used when the model is
// unavailable, keyed by (goal, level) with a per-category adjustment
// applied on top. Values sit comfortably inside the safety bounds.
var baselineTable = map[baselineKey]predictor.Targets{
	{profile.GoalMuscleGain, profile.LevelBeginner}:     {Sets: 3, Reps: 10, Intensity: 67, Weight: 3.5, RPE: 7},
	{profile.GoalMuscleGain, profile.LevelIntermediate}: {Sets: 4, Reps: 8, Intensity: 75, Weight: 5, RPE: 7},
	{profile.GoalMuscleGain, profile.LevelAdvanced}:     {Sets: 4, Reps: 8, Intensity: 80, Weight: 6.5, RPE: 8},
	{profile.GoalWeightLoss, profile.LevelBeginner}:     {Sets: 3, Reps: 12, Intensity: 62, Weight: 2.5, RPE: 6.5},
	{profile.GoalWeightLoss, profile.LevelIntermediate}: {Sets: 3, Reps: 12, Intensity: 70, Weight: 4, RPE: 7},
	{profile.GoalWeightLoss, profile.LevelAdvanced}:     {Sets: 4, Reps: 12, Intensity: 72, Weight: 5, RPE: 7.5},
	{profile.GoalStrength, profile.LevelBeginner}:       {Sets: 3, Reps: 6, Intensity: 75, Weight: 4.5, RPE: 7.5},
	{profile.GoalStrength, profile.LevelIntermediate}:   {Sets: 4, Reps: 5, Intensity: 85, Weight: 7, RPE: 8.5},
	{profile.GoalStrength, profile.LevelAdvanced}:       {Sets: 5, Reps: 5, Intensity: 88, Weight: 8.5, RPE: 8.5},
	{profile.GoalEndurance, profile.LevelBeginner}:      {Sets: 2, Reps: 15, Intensity: 58, Weight: 2, RPE: 6},
	{profile.GoalEndurance, profile.LevelIntermediate}:  {Sets: 3, Reps: 15, Intensity: 65, Weight: 3, RPE: 6.5},
	{profile.GoalEndurance, profile.LevelAdvanced}:      {Sets: 3, Reps: 18, Intensity: 68, Weight: 3.5, RPE: 7},
	{profile.GoalToning, profile.LevelBeginner}:         {Sets: 3, Reps: 12, Intensity: 60, Weight: 2.5, RPE: 6},
	{profile.GoalToning, profile.LevelIntermediate}:     {Sets: 3, Reps: 12, Intensity: 65, Weight: 3.5, RPE: 6.5},
	{profile.GoalToning, profile.LevelAdvanced}:         {Sets: 4, Reps: 12, Intensity: 68, Weight: 4.5, RPE: 7},
	{profile.GoalGeneral, profile.LevelBeginner}:        {Sets: 3, Reps: 10, Intensity: 62, Weight: 3, RPE: 6.5},
	{profile.GoalGeneral, profile.LevelIntermediate}:    {Sets: 3, Reps: 10, Intensity: 70, Weight: 4, RPE: 7},
	{profile.GoalGeneral, profile.LevelAdvanced}:        {Sets: 4, Reps: 10, Intensity: 74, Weight: 5, RPE: 7.5},
}

// Baseline derives targets from the fallback table. Compound movements
// get a set and a little intensity over the table value; core and
// stretching work drop load.
func (e *Engine) Baseline(p profile.Profile, category string) predictor.Targets {
	key := baselineKey{p.Goal, p.Level}
	t, ok := baselineTable[key]
	if !ok {
		t = baselineTable[baselineKey{profile.GoalGeneral, profile.LevelIntermediate}]
	}

	switch category {
	case "compound":
		t.Sets++
		t.Intensity += 2
	case "core", "stretching":
		t.Weight = 0
		t.Intensity -= 5
	case "cardio":
		t.Weight = 0
		t.Reps += 3
	}
	return Clamp(t)
}

// Refine applies the goal adjustments on top of a raw model prediction.
// Strength trades reps for intensity, endurance the reverse, muscle
// gain adds a small hypertrophy volume bump.
func (e *Engine) Refine(t predictor.Targets, p profile.Profile) predictor.Targets {
	switch p.Goal {
	case profile.GoalStrength:
		t.Intensity += 3
		t.Reps -= 1.5
	case profile.GoalEndurance:
		t.Reps += 2
		t.Intensity -= 3
	case profile.GoalMuscleGain:
		t.Sets *= 1.05
	}
	return t
}

// Clamp saturates targets into the documented safety bounds.
func Clamp(t predictor.Targets) predictor.Targets {
	t.Sets = clampFloat(t.Sets, MinSets, MaxSets)
	t.Reps = clampFloat(t.Reps, MinReps, MaxReps)
	t.Intensity = clampFloat(t.Intensity, MinIntensity, MaxIntensity)
	t.Weight = clampFloat(t.Weight, MinWeight, MaxWeight)
	t.RPE = clampFloat(t.RPE, MinRPE, MaxRPE)
	return t
}

// Progress applies progressive overload for a 0-based week index.
// Computed from the base targets every time, so recomputing any week
// yields identical results regardless of order.
func Progress(base predictor.Targets, week int) predictor.Targets {
	if week <= 0 {
		return Clamp(base)
	}
	w := float64(week)
	t := base
	t.Intensity += IntensityPerWeek * w
	t.Weight += WeightPerWeek * w
	t.RPE += RPEPerWeek * w
	return Clamp(t)
}

// WeeklySetCap returns the safe weekly set volume for a muscle group.
func WeeklySetCap(g catalog.MuscleGroup) int {
	if cap, ok := weeklySetCaps[g]; ok {
		return cap
	}
	return defaultWeeklySetCap
}

var weeklySetCaps = map[catalog.MuscleGroup]int{
	catalog.GroupQuads:      25,
	catalog.GroupHamstrings: 25,
	catalog.GroupGlutes:     25,
	catalog.GroupChest:      20,
	catalog.GroupBack:       20,
	catalog.GroupShoulders:  15,
}

const defaultWeeklySetCap = 30

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
