package predictor

import (
	"strings"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/profile"
)

// FeatureVector is the fixed-order numeric encoding the model consumes.
type FeatureVector []float64

// NumericFeature describes one standardized numeric slot.
type NumericFeature struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// CategoricalFeature describes one one-hot block. The final value in
// Values is the unknown/other bucket; inputs outside the training
// vocabulary map there instead of failing.
type CategoricalFeature struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Schema is the model's expected input encoding: standardized numeric
// slots followed by one-hot categorical blocks, in declaration order.
// The schema is part of the model artifact so vector shape follows the
// model, not the code.
type Schema struct {
	Numeric     []NumericFeature     `json:"numeric"`
	Categorical []CategoricalFeature `json:"categorical"`
}

// Width returns the total vector width.
func (s *Schema) Width() int {
	w := len(s.Numeric)
	for _, c := range s.Categorical {
		w += len(c.Values)
	}
	return w
}

// Vectorize encodes a (profile, exercise) pair. Week and day are part of
// the vectorizer contract for schema stability, but the current model
// was trained without temporal features; progression across weeks is
// applied downstream by the rules engine. The same inputs always yield
// the same vector regardless of what else is in the plan.
func (s *Schema) Vectorize(p profile.Profile, ex *catalog.ExerciseSpec, week, day int) FeatureVector {
	_ = week
	_ = day

	vec := make(FeatureVector, 0, s.Width())

	for _, n := range s.Numeric {
		var raw float64
		switch n.Name {
		case "age":
			raw = float64(p.Age)
		case "training_days":
			raw = float64(p.DaysPerWeek)
		}
		std := n.Std
		if std == 0 {
			std = 1
		}
		vec = append(vec, (raw-n.Mean)/std)
	}

	for _, c := range s.Categorical {
		var value string
		switch c.Name {
		case "gender":
			value = string(p.Gender)
		case "goal":
			value = string(p.Goal)
		case "experience":
			value = string(p.Level)
		case "location":
			value = string(p.Location)
		case "body_type":
			value = string(p.BodyType)
		case "muscle_group":
			value = string(ex.PrimaryGroup())
		case "equipment":
			if len(ex.Equipment) > 0 {
				value = ex.Equipment[0]
			}
		case "bodypart":
			if len(ex.BodyParts) > 0 {
				value = ex.BodyParts[0]
			}
		}
		vec = append(vec, oneHot(c.Values, value)...)
	}

	return vec
}

// oneHot encodes value against the vocabulary. Unrecognized values light
// the final (unknown) bucket.
func oneHot(vocab []string, value string) []float64 {
	out := make([]float64, len(vocab))
	idx := len(vocab) - 1
	for i, v := range vocab {
		if strings.EqualFold(v, value) {
			idx = i
			break
		}
	}
	out[idx] = 1
	return out
}
