package predictor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/profile"
)

func testExercise() *catalog.ExerciseSpec {
	return &catalog.ExerciseSpec{
		Name:          "Barbell Bench Press",
		TargetMuscles: []string{"pectorals"},
		Equipment:     []string{"barbell"},
		BodyParts:     []string{"chest"},
		Category:      "compound",
	}
}

func TestLoadEmbedded(t *testing.T) {
	f, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, target := range []string{"sets", "reps", "intensity", "weight", "rpe"} {
		if _, ok := f.R2Scores()[target]; !ok {
			t.Errorf("Missing r2 score for target %s", target)
		}
	}
}

func TestVectorizeMatchesSchemaWidth(t *testing.T) {
	f, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	vec := f.Schema().Vectorize(profile.Default(), testExercise(), 0, 0)
	if len(vec) != f.Schema().Width() {
		t.Errorf("Vector width %d does not match schema width %d", len(vec), f.Schema().Width())
	}
}

func TestPredictDeterministic(t *testing.T) {
	f, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	vec := f.Schema().Vectorize(profile.Default(), testExercise(), 0, 0)
	first, err := f.Predict(vec)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := f.Predict(vec)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first != second {
		t.Errorf("Expected identical predictions, got %+v and %+v", first, second)
	}

	if first.Sets <= 0 || first.Reps <= 0 || first.Intensity <= 0 {
		t.Errorf("Expected positive predictions, got %+v", first)
	}
}

func TestPredictBatchMatchesSingle(t *testing.T) {
	f, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	p := profile.Default()
	p.Goal = profile.GoalStrength
	vecs := []FeatureVector{
		f.Schema().Vectorize(profile.Default(), testExercise(), 0, 0),
		f.Schema().Vectorize(p, testExercise(), 0, 0),
	}

	batch, err := f.PredictBatch(vecs)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(batch))
	}

	for i, vec := range vecs {
		single, err := f.Predict(vec)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if batch[i] != single {
			t.Errorf("Batch result %d = %+v, single = %+v", i, batch[i], single)
		}
	}
}

func TestPredictWrongWidth(t *testing.T) {
	f, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = f.Predict(FeatureVector{1, 2, 3})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Expected ErrModelUnavailable, got %v", err)
	}
}

func TestParseModelRejectsEmpty(t *testing.T) {
	if _, err := parseModel([]byte(`{}`)); err == nil {
		t.Error("Expected error for model with no trees")
	}
	if _, err := parseModel([]byte(`not json`)); err == nil {
		t.Error("Expected error for malformed model")
	}
}

func TestUnavailablePredictor(t *testing.T) {
	u := NewUnavailable()

	if _, err := u.Predict(FeatureVector{}); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Expected ErrModelUnavailable, got %v", err)
	}
	if _, err := u.PredictBatch(nil); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Expected ErrModelUnavailable, got %v", err)
	}
	if u.Schema().Width() == 0 {
		t.Error("Expected unavailable predictor to keep a usable schema")
	}
}

func TestOneHotUnknownBucket(t *testing.T) {
	vocab := []string{"a", "b", "other"}

	got := oneHot(vocab, "b")
	if !reflect.DeepEqual(got, []float64{0, 1, 0}) {
		t.Errorf("Expected b bucket, got %v", got)
	}

	got = oneHot(vocab, "zzz")
	if !reflect.DeepEqual(got, []float64{0, 0, 1}) {
		t.Errorf("Expected unknown bucket, got %v", got)
	}
}
