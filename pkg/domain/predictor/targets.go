// Package predictor wraps the pre-trained workout parameter model behind
// a single predict contract. Any conforming implementation is
// substitutable; the planner and rules engine never see past the
// interface.
package predictor

// Targets are the five continuous workout parameters predicted per
// exercise instance. Raw model output is unclamped; the rules engine
// owns safety clamping and progression.
type Targets struct {
	Sets      float64 `json:"sets"`
	Reps      float64 `json:"reps"`
	Intensity float64 `json:"intensity"`
	Weight    float64 `json:"weight"`
	RPE       float64 `json:"rpe"`
}
