package predictor

import "errors"

// ErrModelUnavailable signals that the underlying model failed to load
// or errored at call time. Callers recover by falling back to the rules
// engine's baseline estimation; it never surfaces as a request failure.
var ErrModelUnavailable = errors.New("parameter model unavailable")

// Predictor is the single contract the planner depends on. The batch
// call exists for throughput when an implementation benefits from
// vectorized input; both forms must agree on output for equal input.
type Predictor interface {
	Predict(vec FeatureVector) (Targets, error)
	PredictBatch(vecs []FeatureVector) ([]Targets, error)

	// Schema returns the input encoding this model expects.
	Schema() *Schema
}

// Unavailable is a Predictor whose model could not be loaded: every call
// reports ErrModelUnavailable. Keeping it as a real implementation means
// the planner needs no nil checks and the process still serves plans.
type Unavailable struct {
	schema Schema
}

// NewUnavailable returns the always-failing predictor.
func NewUnavailable() *Unavailable {
	return &Unavailable{schema: defaultSchema()}
}

func (u *Unavailable) Predict(FeatureVector) (Targets, error) {
	return Targets{}, ErrModelUnavailable
}

func (u *Unavailable) PredictBatch(vecs []FeatureVector) ([]Targets, error) {
	return nil, ErrModelUnavailable
}

func (u *Unavailable) Schema() *Schema { return &u.schema }
