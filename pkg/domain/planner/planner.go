package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/predictor"
	"github.com/fitglue/planner/pkg/domain/profile"
	"github.com/fitglue/planner/pkg/domain/rules"
)

// Planner assembles multi-week plans from the catalog, the parameter
// model, and the rules engine. Stateless across requests; safe for
// concurrent use.
type Planner struct {
	cat  *catalog.Catalog
	pred predictor.Predictor
	eng  *rules.Engine
}

func New(cat *catalog.Catalog, pred predictor.Predictor, eng *rules.Engine) *Planner {
	return &Planner{cat: cat, pred: pred, eng: eng}
}

// slotDraft carries a selected exercise and its base-week targets
// before progression and rounding.
type slotDraft struct {
	ex          *catalog.ExerciseSpec
	base        predictor.Targets
	substituted bool
	reason      string
}

// dayDraft is one training day of the base week.
type dayDraft struct {
	weekday int
	focus   string
	slots   []slotDraft
}

// Generate builds a plan for the profile. The base week is assembled
// once (selection, substitution, prediction, refinement, volume caps)
// and later weeks derive from it through progressive overload, so the
// whole plan is a pure function of its inputs.
func (pl *Planner) Generate(ctx context.Context, logger *slog.Logger, p profile.Profile, weeks int) (*Plan, error) {
	if weeks < 1 || weeks > MaxWeeks {
		return nil, fmt.Errorf("%w: weeks must be between 1 and %d, got %d", ErrInvalidInput, MaxWeeks, weeks)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var warnings []string

	split := splitFor(p.DaysPerWeek, p.Goal)
	weekdays := trainingWeekdays(p.DaysPerWeek)
	perDay := exercisesPerDay(p.Goal, p.Level)

	// Base-week exercise selection.
	usedThisWeek := map[string]bool{}
	var days []dayDraft
	for i, wd := range weekdays {
		focus := split[i%len(split)]
		selected := pl.selectExercises(focus, perDay, p, usedThisWeek, &warnings)

		day := dayDraft{weekday: wd, focus: focus.name}
		for _, ex := range selected {
			sub, err := pl.eng.ResolveExercise(p, ex)
			if err != nil {
				if errors.Is(err, rules.ErrNoViableExercise) {
					warnings = append(warnings, err.Error())
					continue
				}
				return nil, err
			}
			if dayHas(day.slots, sub.Exercise.Name) {
				warnings = append(warnings, fmt.Sprintf("%s dropped: substitute %s already scheduled that day", ex.Name, sub.Exercise.Name))
				continue
			}
			day.slots = append(day.slots, slotDraft{
				ex:          sub.Exercise,
				substituted: sub.Substituted,
				reason:      sub.Reason,
			})
			// Substitutes count against the weekly no-repeat policy too.
			usedThisWeek[sub.Exercise.Name] = true
		}
		days = append(days, day)
	}

	// Base-week targets.
	source, err := pl.fillBaseTargets(p, days, &warnings)
	if err != nil {
		return nil, err
	}

	// Volume capping is a rules adjustment, so a capped plan is no
	// longer purely model-determined.
	if pl.applyVolumeCaps(days, &warnings) && source == SourceModel {
		source = SourceHybrid
	}

	logger.Info("plan assembled",
		slog.Int("weeks", weeks),
		slog.Int("training_days", len(weekdays)),
		slog.String("source", string(source)),
		slog.Int("warnings", len(warnings)))

	return pl.expand(p, days, weeks, source, warnings), nil
}

// selectExercises fills a day by cycling the focus groups in order,
// drawing the next unused candidate from each. When a group's filtered
// candidate list is empty it relaxes into adjacent groups; when
// everything unused is exhausted it permits repeats from earlier days
// before giving up on the slot.
func (pl *Planner) selectExercises(focus dayFocus, n int, p profile.Profile, usedThisWeek map[string]bool, warnings *[]string) []*catalog.ExerciseSpec {
	pools := make([][]*catalog.ExerciseSpec, len(focus.groups))
	for i, g := range focus.groups {
		pool := pl.cat.Candidates(g, p.Location)
		if len(pool) == 0 {
			for _, adj := range catalog.AdjacentGroups[g] {
				pool = pl.cat.Candidates(adj, p.Location)
				if len(pool) > 0 {
					*warnings = append(*warnings, fmt.Sprintf("no %s exercises available at %s; drawing from %s instead", g, p.Location, adj))
					break
				}
			}
		}
		pools[i] = pool
	}

	var selected []*catalog.ExerciseSpec
	selectedNames := map[string]bool{}
	cursors := make([]int, len(pools))

	pick := func(allowRepeats bool) bool {
		for round := 0; len(selected) < n; round++ {
			progressed := false
			for i := range pools {
				if len(selected) >= n {
					break
				}
				for cursors[i] < len(pools[i]) {
					cand := pools[i][cursors[i]]
					cursors[i]++
					if selectedNames[cand.Name] {
						continue
					}
					if !allowRepeats && usedThisWeek[cand.Name] {
						continue
					}
					selected = append(selected, cand)
					selectedNames[cand.Name] = true
					usedThisWeek[cand.Name] = true
					progressed = true
					break
				}
			}
			if !progressed {
				return len(selected) >= n
			}
		}
		return true
	}

	if !pick(false) {
		for i := range cursors {
			cursors[i] = 0
		}
		pick(true)
	}

	if len(selected) < n {
		*warnings = append(*warnings, fmt.Sprintf("only %d of %d exercises available for %s day", len(selected), n, focus.name))
	}
	return selected
}

// fillBaseTargets predicts parameters for every base-week slot in one
// batch per day, refines them with the goal rules, and clamps. A model
// failure of any kind degrades the whole plan to the baseline tables
// rather than mixing sources within it.
func (pl *Planner) fillBaseTargets(p profile.Profile, days []dayDraft, warnings *[]string) (Source, error) {
	schema := pl.pred.Schema()
	modelUsed := false
	adjusted := false

	for di := range days {
		day := &days[di]
		if len(day.slots) == 0 {
			continue
		}

		vecs := make([]predictor.FeatureVector, len(day.slots))
		for si, s := range day.slots {
			vecs[si] = schema.Vectorize(p, s.ex, 0, di)
		}

		preds, err := pl.pred.PredictBatch(vecs)
		if err != nil {
			if !errors.Is(err, predictor.ErrModelUnavailable) {
				return "", err
			}
			pl.fillBaselines(p, days)
			*warnings = append(*warnings, "parameter model unavailable; plan built from baseline tables")
			return SourceExpertRules, nil
		}

		modelUsed = true
		for si := range day.slots {
			raw := preds[si]
			final := rules.Clamp(pl.eng.Refine(raw, p))
			if !targetsEqual(raw, final) {
				adjusted = true
			}
			day.slots[si].base = final
		}
	}

	if !modelUsed {
		pl.fillBaselines(p, days)
		return SourceExpertRules, nil
	}
	if adjusted {
		return SourceHybrid, nil
	}
	return SourceModel, nil
}

// fillBaselines overwrites every slot's base targets from the fallback
// tables.
func (pl *Planner) fillBaselines(p profile.Profile, days []dayDraft) {
	for di := range days {
		for si := range days[di].slots {
			days[di].slots[si].base = pl.eng.Baseline(p, days[di].slots[si].ex.Category)
		}
	}
}

// applyVolumeCaps scales base sets down, per muscle group, when the
// base week's total for that group exceeds its weekly cap. Progression
// does not touch sets, so capping the base week caps every week.
// Reports whether any group was scaled.
func (pl *Planner) applyVolumeCaps(days []dayDraft, warnings *[]string) bool {
	totals := map[catalog.MuscleGroup]float64{}
	for _, day := range days {
		for _, s := range day.slots {
			totals[s.ex.PrimaryGroup()] += s.base.Sets
		}
	}

	groups := make([]catalog.MuscleGroup, 0, len(totals))
	for g := range totals {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

	scales := map[catalog.MuscleGroup]float64{}
	for _, g := range groups {
		total := totals[g]
		cap := float64(rules.WeeklySetCap(g))
		if total > cap {
			scales[g] = cap / total
			*warnings = append(*warnings, fmt.Sprintf("weekly %s volume reduced from %d to %d sets", g, int(math.Round(total)), int(cap)))
		}
	}
	if len(scales) == 0 {
		return false
	}

	for di := range days {
		for si := range days[di].slots {
			s := &days[di].slots[si]
			if scale, ok := scales[s.ex.PrimaryGroup()]; ok {
				s.base.Sets = math.Max(rules.MinSets, s.base.Sets*scale)
			}
		}
	}
	return true
}

// expand derives every week from the base drafts via progressive
// overload and final rounding.
func (pl *Planner) expand(p profile.Profile, days []dayDraft, weeks int, source Source, warnings []string) *Plan {
	plan := &Plan{
		Profile:  p,
		Source:   source,
		Warnings: warnings,
	}

	for w := 0; w < weeks; w++ {
		week := Week{Number: w + 1}
		di := 0
		for wd := 1; wd <= 7; wd++ {
			if di < len(days) && days[di].weekday == wd {
				day := Day{Weekday: wd, Focus: days[di].focus}
				for _, s := range days[di].slots {
					t := rules.Progress(s.base, w)
					day.Slots = append(day.Slots, Slot{
						Exercise:           s.ex.Name,
						MuscleGroup:        s.ex.PrimaryGroup(),
						Category:           s.ex.Category,
						Equipment:          s.ex.Equipment,
						Targets:            finalize(t),
						Substituted:        s.substituted,
						SubstitutionReason: s.reason,
					})
				}
				week.Days = append(week.Days, day)
				di++
			} else {
				week.Days = append(week.Days, Day{Weekday: wd, Rest: true})
			}
		}
		plan.Weeks = append(plan.Weeks, week)
	}
	return plan
}

// finalize rounds clamped targets to their presentation precision.
// Rounding happens after clamping, so values stay in bounds.
func finalize(t predictor.Targets) SlotTargets {
	return SlotTargets{
		Sets:      int(math.Round(t.Sets)),
		Reps:      int(math.Round(t.Reps)),
		Intensity: int(math.Round(t.Intensity)),
		Weight:    round1(t.Weight),
		RPE:       round1(t.RPE),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func targetsEqual(a, b predictor.Targets) bool {
	const eps = 1e-9
	return math.Abs(a.Sets-b.Sets) < eps &&
		math.Abs(a.Reps-b.Reps) < eps &&
		math.Abs(a.Intensity-b.Intensity) < eps &&
		math.Abs(a.Weight-b.Weight) < eps &&
		math.Abs(a.RPE-b.RPE) < eps
}

func dayHas(slots []slotDraft, name string) bool {
	for _, s := range slots {
		if s.ex.Name == name {
			return true
		}
	}
	return false
}
