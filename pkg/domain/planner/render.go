package planner

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fitglue/planner/pkg/domain/profile"
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var goalTips = map[profile.Goal]string{
	profile.GoalMuscleGain: "Prioritize protein intake and full range of motion on every rep.",
	profile.GoalWeightLoss: "Keep rest periods short and stay consistent with the conditioning days.",
	profile.GoalStrength:   "Warm up thoroughly before the heavy compound lifts.",
	profile.GoalEndurance:  "Focus on controlled breathing and steady pacing.",
	profile.GoalToning:     "Control the eccentric on every movement.",
	profile.GoalGeneral:    "Consistency beats intensity. Show up for every session.",
}

var titleCaser = cases.Title(language.English)

// RenderText formats a plan as readable text. Output is deterministic
// for a given plan.
func RenderText(plan *Plan) string {
	var b strings.Builder

	p := plan.Profile
	fmt.Fprintf(&b, "Training Plan: %s, %s level, %d days/week\n",
		titleCaser.String(strings.ReplaceAll(string(p.Goal), "_", " ")),
		string(p.Level),
		p.DaysPerWeek)
	if len(p.Injuries) > 0 {
		fmt.Fprintf(&b, "Working around: %s\n", strings.Join(p.Injuries, ", "))
	}
	b.WriteString("\n")

	for _, week := range plan.Weeks {
		fmt.Fprintf(&b, "=== Week %d ===\n", week.Number)
		for _, day := range week.Days {
			name := weekdayNames[day.Weekday]
			if day.Rest {
				fmt.Fprintf(&b, "%s: Rest\n", name)
				continue
			}
			fmt.Fprintf(&b, "%s (%s):\n", name, day.Focus)
			for _, slot := range day.Slots {
				fmt.Fprintf(&b, "  - %s: %d x %d @ %d%% intensity, RPE %.1f",
					titleCaser.String(slot.Exercise), slot.Targets.Sets, slot.Targets.Reps,
					slot.Targets.Intensity, slot.Targets.RPE)
				if slot.Targets.Weight > 0 {
					fmt.Fprintf(&b, ", load %.1f", slot.Targets.Weight)
				}
				if slot.Substituted {
					b.WriteString(" (substituted)")
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if tip, ok := goalTips[p.Goal]; ok {
		fmt.Fprintf(&b, "Tip: %s\n", tip)
	}
	if len(plan.Warnings) > 0 {
		b.WriteString("Notes:\n")
		for _, w := range plan.Warnings {
			fmt.Fprintf(&b, "  * %s\n", w)
		}
	}

	return b.String()
}
