package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/profile"
)

// ErrNoViableExercise means no catalog entry satisfies the combined
// muscle-group, equipment, and injury filters. The planner recovers by
// omitting the slot and recording the reason; it never aborts the plan.
var ErrNoViableExercise = errors.New("no viable exercise for slot")

// contraindications maps an injury region to the exercise tags that are
// off limits while it heals. Tags are matched against an exercise's
// body parts and target muscles.
var contraindications = map[string][]string{
	"knee":     {"knees"},
	"back":     {"lower back", "spine", "erector spinae"},
	"shoulder": {"shoulders", "rotator cuff"},
	"wrist":    {"wrists"},
	"ankle":    {"ankles"},
	"hip":      {"hips", "hip flexors"},
	"neck":     {"neck"},
}

// Substitution is the outcome of resolving one scheduled exercise
// against the profile's constraints.
type Substitution struct {
	Exercise    *catalog.ExerciseSpec
	Substituted bool
	Reason      string
}

// forbiddenTags collects every contraindicated tag for the profile.
func forbiddenTags(p profile.Profile) map[string]bool {
	tags := map[string]bool{}
	for _, injury := range p.Injuries {
		for _, tag := range contraindications[injury] {
			tags[tag] = true
		}
	}
	return tags
}

// intersects reports whether any of the exercise's tags are forbidden.
func intersects(ex *catalog.ExerciseSpec, forbidden map[string]bool) bool {
	for _, bp := range ex.BodyParts {
		if forbidden[strings.ToLower(bp)] {
			return true
		}
	}
	for _, m := range ex.TargetMuscles {
		if forbidden[strings.ToLower(m)] {
			return true
		}
	}
	return false
}

// ResolveExercise applies injury and equipment substitution for one
// candidate. Injury and equipment checks compose: a substitute chosen
// for an injury must still pass the equipment filter and vice versa.
// When nothing in the catalog can fill the slot it returns
// ErrNoViableExercise with a reason the caller records.
func (e *Engine) ResolveExercise(p profile.Profile, ex *catalog.ExerciseSpec) (Substitution, error) {
	forbidden := forbiddenTags(p)

	injuryHit := intersects(ex, forbidden)
	equipmentHit := !catalog.EquipmentAllowed(ex, p.Location)

	if !injuryHit && !equipmentHit {
		return Substitution{Exercise: ex}, nil
	}

	var reason string
	switch {
	case injuryHit && equipmentHit:
		reason = fmt.Sprintf("%s conflicts with a reported injury and needs unavailable equipment", ex.Name)
	case injuryHit:
		reason = fmt.Sprintf("%s conflicts with a reported injury (%s)", ex.Name, strings.Join(p.Injuries, ", "))
	default:
		reason = fmt.Sprintf("%s needs equipment not available at %s", ex.Name, p.Location)
	}

	sub := e.findSubstitute(p, ex, forbidden)
	if sub == nil {
		return Substitution{}, fmt.Errorf("%w: %s", ErrNoViableExercise, reason)
	}

	return Substitution{
		Exercise:    sub,
		Substituted: true,
		Reason:      fmt.Sprintf("%s; replaced with %s", reason, sub.Name),
	}, nil
}

// findSubstitute picks the best-scoring alternative targeting the same
// primary muscle group. Equipment availability is a hard requirement;
// category similarity breaks preference, catalog insertion order breaks
// ties. Deterministic for a fixed catalog.
func (e *Engine) findSubstitute(p profile.Profile, original *catalog.ExerciseSpec, forbidden map[string]bool) *catalog.ExerciseSpec {
	var best *catalog.ExerciseSpec
	bestScore := -1

	for _, cand := range e.cat.ByGroup(original.PrimaryGroup()) {
		if cand == original {
			continue
		}
		if intersects(cand, forbidden) {
			continue
		}
		if !catalog.EquipmentAllowed(cand, p.Location) {
			continue
		}

		score := 0
		if strings.EqualFold(cand.Category, original.Category) {
			score++
		}
		if score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}
