// Package planner selects exercises, schedules them across training
// days and weeks, and assembles the final plan. Generation is
// deterministic: the same profile, weeks, catalog, and model always
// produce an identical plan.
package planner

import (
	"errors"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/profile"
)

// ErrInvalidInput covers structurally invalid request parameters, such
// as a non-positive week count. Unlike everything downstream of profile
// parsing, this one is surfaced to the caller.
var ErrInvalidInput = errors.New("invalid plan request")

// MaxWeeks bounds a single plan request.
const MaxWeeks = 26

// Source records which mechanism determined the final parameters.
type Source string

const (
	// SourceModel: model predictions survived the rules overlay intact.
	SourceModel Source = "model"
	// SourceExpertRules: the model was unavailable, baseline tables only.
	SourceExpertRules Source = "expert_rules"
	// SourceHybrid: model predictions adjusted by the rules overlay.
	SourceHybrid Source = "hybrid"
)

// SlotTargets are the finalized per-slot parameters after clamping,
// progression, and rounding.
type SlotTargets struct {
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Intensity int     `json:"intensity"`
	Weight    float64 `json:"weight"`
	RPE       float64 `json:"rpe"`
}

// Slot is one (week, day, exercise) assignment. Immutable once the plan
// is assembled.
type Slot struct {
	Exercise           string              `json:"exercise"`
	MuscleGroup        catalog.MuscleGroup `json:"muscle_group"`
	Category           string              `json:"category"`
	Equipment          []string            `json:"equipment,omitempty"`
	Targets            SlotTargets         `json:"targets"`
	Substituted        bool                `json:"substituted,omitempty"`
	SubstitutionReason string              `json:"substitution_reason,omitempty"`
}

// Day is one calendar day of a training week. Rest days carry no slots.
type Day struct {
	Weekday int    `json:"day"`
	Rest    bool   `json:"rest"`
	Focus   string `json:"focus,omitempty"`
	Slots   []Slot `json:"slots,omitempty"`
}

// Week is an ordered run of seven days.
type Week struct {
	Number int   `json:"week"`
	Days   []Day `json:"days"`
}

// Plan is the full multi-week schedule plus its provenance.
type Plan struct {
	Profile  profile.Profile `json:"profile"`
	Weeks    []Week          `json:"weeks"`
	Source   Source          `json:"source"`
	Warnings []string        `json:"warnings,omitempty"`
}

// SlotCount returns the total number of exercise slots in the plan.
func (p *Plan) SlotCount() int {
	n := 0
	for _, w := range p.Weeks {
		for _, d := range w.Days {
			n += len(d.Slots)
		}
	}
	return n
}
