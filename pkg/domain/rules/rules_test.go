package rules

import (
	"testing"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/predictor"
	"github.com/fitglue/planner/pkg/domain/profile"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("Expected no error loading catalog, got %v", err)
	}
	return NewEngine(cat)
}

func TestClampBounds(t *testing.T) {
	tests := []struct {
		name     string
		in       predictor.Targets
		expected predictor.Targets
	}{
		{
			name:     "below minimums",
			in:       predictor.Targets{Sets: 0, Reps: 0, Intensity: 10, Weight: -5, RPE: 1},
			expected: predictor.Targets{Sets: MinSets, Reps: MinReps, Intensity: MinIntensity, Weight: MinWeight, RPE: MinRPE},
		},
		{
			name:     "above maximums",
			in:       predictor.Targets{Sets: 99, Reps: 50, Intensity: 200, Weight: 100, RPE: 15},
			expected: predictor.Targets{Sets: MaxSets, Reps: MaxReps, Intensity: MaxIntensity, Weight: MaxWeight, RPE: MaxRPE},
		},
		{
			name:     "in bounds untouched",
			in:       predictor.Targets{Sets: 4, Reps: 8, Intensity: 75, Weight: 5, RPE: 7.5},
			expected: predictor.Targets{Sets: 4, Reps: 8, Intensity: 75, Weight: 5, RPE: 7.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in); got != tt.expected {
				t.Errorf("Clamp(%+v) = %+v, expected %+v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestBaselineKnownEntries(t *testing.T) {
	eng := testEngine(t)

	p := profile.Default()
	p.Goal = profile.GoalStrength
	p.Level = profile.LevelIntermediate

	got := eng.Baseline(p, "isolation")
	expected := predictor.Targets{Sets: 4, Reps: 5, Intensity: 85, Weight: 7, RPE: 8.5}
	if got != expected {
		t.Errorf("Baseline(strength/intermediate) = %+v, expected %+v", got, expected)
	}
}

func TestBaselineCategoryAdjustments(t *testing.T) {
	eng := testEngine(t)
	p := profile.Default()

	base := eng.Baseline(p, "isolation")

	compound := eng.Baseline(p, "compound")
	if compound.Sets != base.Sets+1 {
		t.Errorf("Expected compound to add a set: %v vs %v", compound.Sets, base.Sets)
	}
	if compound.Intensity != base.Intensity+2 {
		t.Errorf("Expected compound to add intensity: %v vs %v", compound.Intensity, base.Intensity)
	}

	core := eng.Baseline(p, "core")
	if core.Weight != 0 {
		t.Errorf("Expected core work to carry no load, got %v", core.Weight)
	}

	cardio := eng.Baseline(p, "cardio")
	if cardio.Weight != 0 {
		t.Errorf("Expected cardio to carry no load, got %v", cardio.Weight)
	}
	if cardio.Reps != base.Reps+3 {
		t.Errorf("Expected cardio to add reps: %v vs %v", cardio.Reps, base.Reps)
	}
}

func TestBaselineUnknownKeyFallsBack(t *testing.T) {
	eng := testEngine(t)
	p := profile.Default()
	p.Goal = profile.Goal("something_new")

	got := eng.Baseline(p, "isolation")
	expected := predictor.Targets{Sets: 3, Reps: 10, Intensity: 70, Weight: 4, RPE: 7}
	if got != expected {
		t.Errorf("Expected general/intermediate fallback %+v, got %+v", expected, got)
	}
}

func TestRefineGoalAdjustments(t *testing.T) {
	eng := testEngine(t)
	in := predictor.Targets{Sets: 4, Reps: 10, Intensity: 70, Weight: 5, RPE: 7}

	strength := profile.Default()
	strength.Goal = profile.GoalStrength
	got := eng.Refine(in, strength)
	if got.Intensity != 73 || got.Reps != 8.5 {
		t.Errorf("Strength refine: got intensity %v reps %v", got.Intensity, got.Reps)
	}

	endurance := profile.Default()
	endurance.Goal = profile.GoalEndurance
	got = eng.Refine(in, endurance)
	if got.Reps != 12 || got.Intensity != 67 {
		t.Errorf("Endurance refine: got reps %v intensity %v", got.Reps, got.Intensity)
	}

	general := profile.Default()
	got = eng.Refine(in, general)
	if got != in {
		t.Errorf("General goal should not adjust, got %+v", got)
	}
}

func TestProgressWeekZeroIsClampedBase(t *testing.T) {
	base := predictor.Targets{Sets: 4, Reps: 8, Intensity: 75, Weight: 5, RPE: 7.5}
	if got := Progress(base, 0); got != base {
		t.Errorf("Progress(base, 0) = %+v, expected %+v", got, base)
	}
}

func TestProgressMonotonic(t *testing.T) {
	base := predictor.Targets{Sets: 4, Reps: 8, Intensity: 70, Weight: 4, RPE: 7}

	prev := Progress(base, 0)
	for week := 1; week < 6; week++ {
		cur := Progress(base, week)
		if cur.Intensity < prev.Intensity {
			t.Errorf("Week %d intensity %v dropped below week %d's %v", week, cur.Intensity, week-1, prev.Intensity)
		}
		if cur.Weight < prev.Weight {
			t.Errorf("Week %d weight %v dropped below week %d's %v", week, cur.Weight, week-1, prev.Weight)
		}
		if cur.RPE < prev.RPE {
			t.Errorf("Week %d RPE %v dropped below week %d's %v", week, cur.RPE, week-1, prev.RPE)
		}
		if cur.Sets != prev.Sets || cur.Reps != prev.Reps {
			t.Errorf("Week %d changed sets/reps: %+v vs %+v", week, cur, prev)
		}
		prev = cur
	}
}

func TestProgressIdempotent(t *testing.T) {
	base := predictor.Targets{Sets: 4, Reps: 8, Intensity: 70, Weight: 4, RPE: 7}

	first := Progress(base, 3)
	second := Progress(base, 3)
	if first != second {
		t.Errorf("Progress not idempotent: %+v vs %+v", first, second)
	}

	// Increments are fixed per week, not compounding.
	if first.Intensity != 76 {
		t.Errorf("Expected intensity 76 at week 3, got %v", first.Intensity)
	}
}

func TestProgressSaturatesAtBounds(t *testing.T) {
	base := predictor.Targets{Sets: 4, Reps: 8, Intensity: 93, Weight: 13.8, RPE: 9.9}

	got := Progress(base, 10)
	if got.Intensity != MaxIntensity {
		t.Errorf("Expected intensity capped at %v, got %v", MaxIntensity, got.Intensity)
	}
	if got.Weight != MaxWeight {
		t.Errorf("Expected weight capped at %v, got %v", MaxWeight, got.Weight)
	}
	if got.RPE != MaxRPE {
		t.Errorf("Expected RPE capped at %v, got %v", MaxRPE, got.RPE)
	}
}

func TestWeeklySetCap(t *testing.T) {
	tests := []struct {
		group    catalog.MuscleGroup
		expected int
	}{
		{catalog.GroupQuads, 25},
		{catalog.GroupGlutes, 25},
		{catalog.GroupChest, 20},
		{catalog.GroupShoulders, 15},
		{catalog.GroupBiceps, 30},
		{catalog.GroupCore, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.group), func(t *testing.T) {
			if got := WeeklySetCap(tt.group); got != tt.expected {
				t.Errorf("WeeklySetCap(%s) = %d, expected %d", tt.group, got, tt.expected)
			}
		})
	}
}
