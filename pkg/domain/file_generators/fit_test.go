package file_generators

import (
	"testing"
	"time"

	"github.com/muktihari/fit/profile/typedef"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/planner"
)

func testDay() planner.Day {
	return planner.Day{
		Weekday: 1,
		Focus:   "Push",
		Slots: []planner.Slot{
			{
				Exercise:    "barbell bench press",
				MuscleGroup: catalog.GroupChest,
				Category:    "compound",
				Targets:     planner.SlotTargets{Sets: 3, Reps: 8, Intensity: 75, Weight: 5, RPE: 7.5},
			},
			{
				Exercise:    "lateral raise",
				MuscleGroup: catalog.GroupShoulders,
				Category:    "isolation",
				Targets:     planner.SlotTargets{Sets: 3, Reps: 12, Intensity: 65, Weight: 3, RPE: 7},
			},
		},
	}
}

func TestGenerateDayFile(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	result, err := GenerateDayFile(testDay(), start)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result) == 0 {
		t.Fatal("Expected non-empty FIT file result")
	}

	// Byte 8-11 of the header is ".FIT"
	if len(result) < 14 {
		t.Fatalf("Result too short to be a FIT file: %d bytes", len(result))
	}
	if fileType := string(result[8:12]); fileType != ".FIT" {
		t.Errorf("Expected .FIT header, got %q", fileType)
	}
}

func TestGenerateDayFileDeterministic(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	first, err := GenerateDayFile(testDay(), start)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := GenerateDayFile(testDay(), start)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(first) != string(second) {
		t.Error("Expected identical output for identical input")
	}
}

func TestGenerateDayFileRejectsRestDay(t *testing.T) {
	if _, err := GenerateDayFile(planner.Day{Weekday: 2, Rest: true}, time.Now()); err == nil {
		t.Error("Expected error for rest day")
	}
	if _, err := GenerateDayFile(planner.Day{Weekday: 2}, time.Now()); err == nil {
		t.Error("Expected error for day with no exercises")
	}
}

func TestMapExerciseToCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected typedef.ExerciseCategory
	}{
		{"Barbell Bench Press", typedef.ExerciseCategoryBenchPress},
		{"Push-Up", typedef.ExerciseCategoryPushUp},
		{"Romanian Deadlift", typedef.ExerciseCategoryDeadlift},
		{"Goblet Squat", typedef.ExerciseCategorySquat},
		{"Bent-Over Row", typedef.ExerciseCategoryRow},
		{"Lat Pulldown", typedef.ExerciseCategoryPullUp},
		{"Hammer Curl", typedef.ExerciseCategoryCurl},
		{"Plank", typedef.ExerciseCategoryPlank},
		{"Glute Bridge", typedef.ExerciseCategoryHipRaise},
		{"Something Novel", typedef.ExerciseCategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapExerciseToCategory(tt.name); got != tt.expected {
				t.Errorf("MapExerciseToCategory(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}
