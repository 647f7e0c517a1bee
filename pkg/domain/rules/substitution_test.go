package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/profile"
)

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.ExerciseSpec{
		{Name: "Barbell Squat", TargetMuscles: []string{"quadriceps", "glutes"}, Equipment: []string{"barbell"}, BodyParts: []string{"upper legs", "knees", "lower back"}, Category: "compound"},
		{Name: "Leg Press", TargetMuscles: []string{"quadriceps"}, Equipment: []string{"machine"}, BodyParts: []string{"upper legs", "knees"}, Category: "compound"},
		{Name: "Glute Bridge", TargetMuscles: []string{"quadriceps", "glutes"}, Equipment: []string{"body weight"}, BodyParts: []string{"upper legs", "hips"}, Category: "isolation"},
		{Name: "Leg Extension", TargetMuscles: []string{"quadriceps"}, Equipment: []string{"machine"}, BodyParts: []string{"upper legs", "knees"}, Category: "isolation"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return cat
}

func TestResolveExerciseNoConflict(t *testing.T) {
	cat := smallCatalog(t)
	eng := NewEngine(cat)

	squat, _ := cat.ByName("barbell squat")
	sub, err := eng.ResolveExercise(profile.Default(), squat)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sub.Substituted {
		t.Errorf("Expected no substitution, got %+v", sub)
	}
	if sub.Exercise != squat {
		t.Errorf("Expected original exercise back, got %s", sub.Exercise.Name)
	}
}

func TestResolveExerciseInjurySubstitution(t *testing.T) {
	cat := smallCatalog(t)
	eng := NewEngine(cat)

	p := profile.Default()
	p.Injuries = []string{"knee"}

	squat, _ := cat.ByName("barbell squat")
	sub, err := eng.ResolveExercise(p, squat)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !sub.Substituted {
		t.Fatal("Expected a substitution for a knee injury")
	}
	if sub.Exercise.Name != "Glute Bridge" {
		t.Errorf("Expected Glute Bridge, got %s", sub.Exercise.Name)
	}
	if !strings.Contains(sub.Reason, "injury") {
		t.Errorf("Expected reason to mention the injury, got %q", sub.Reason)
	}

	// The substitute itself must not hit the contraindication.
	for _, bp := range sub.Exercise.BodyParts {
		if bp == "knees" {
			t.Errorf("Substitute %s still stresses the knees", sub.Exercise.Name)
		}
	}
}

func TestResolveExerciseEquipmentSubstitution(t *testing.T) {
	cat := smallCatalog(t)
	eng := NewEngine(cat)

	p := profile.Default()
	p.Location = profile.LocationHome

	squat, _ := cat.ByName("barbell squat")
	sub, err := eng.ResolveExercise(p, squat)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !sub.Substituted {
		t.Fatal("Expected a substitution for missing equipment")
	}
	if !catalog.EquipmentAllowed(sub.Exercise, p.Location) {
		t.Errorf("Substitute %s needs equipment unavailable at home", sub.Exercise.Name)
	}
}

func TestResolveExerciseComposedConstraints(t *testing.T) {
	cat := smallCatalog(t)
	eng := NewEngine(cat)

	// Knee injury plus home training leaves only the glute bridge.
	p := profile.Default()
	p.Location = profile.LocationHome
	p.Injuries = []string{"knee"}

	squat, _ := cat.ByName("barbell squat")
	sub, err := eng.ResolveExercise(p, squat)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sub.Exercise.Name != "Glute Bridge" {
		t.Errorf("Expected Glute Bridge, got %s", sub.Exercise.Name)
	}
}

func TestResolveExerciseNoViable(t *testing.T) {
	cat := smallCatalog(t)
	eng := NewEngine(cat)

	// A knee plus hip injury rules out every quad exercise.
	p := profile.Default()
	p.Injuries = []string{"knee", "hip"}

	squat, _ := cat.ByName("barbell squat")
	_, err := eng.ResolveExercise(p, squat)
	if !errors.Is(err, ErrNoViableExercise) {
		t.Errorf("Expected ErrNoViableExercise, got %v", err)
	}
}
