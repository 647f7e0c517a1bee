package catalog

import "strings"

// MuscleGroup is the coarse grouping the scheduler plans around. The
// catalog's target-muscle strings are finer grained (e.g. "lats",
// "anterior deltoids") and fold into these buckets.
type MuscleGroup string

const (
	GroupChest      MuscleGroup = "chest"
	GroupBack       MuscleGroup = "back"
	GroupShoulders  MuscleGroup = "shoulders"
	GroupBiceps     MuscleGroup = "biceps"
	GroupTriceps    MuscleGroup = "triceps"
	GroupForearms   MuscleGroup = "forearms"
	GroupQuads      MuscleGroup = "quadriceps"
	GroupHamstrings MuscleGroup = "hamstrings"
	GroupGlutes     MuscleGroup = "glutes"
	GroupCalves     MuscleGroup = "calves"
	GroupCore       MuscleGroup = "core"
	GroupCardio     MuscleGroup = "cardio"
	GroupFullBody   MuscleGroup = "full_body"
	GroupOther      MuscleGroup = "other"
)

// muscleTaxonomy maps catalog target-muscle names to their group.
// Unknown muscles fall into GroupOther rather than failing.
var muscleTaxonomy = map[string]MuscleGroup{
	"chest":                 GroupChest,
	"pectorals":             GroupChest,
	"upper chest":           GroupChest,
	"lower chest":           GroupChest,
	"serratus anterior":     GroupChest,
	"lats":                  GroupBack,
	"latissimus dorsi":      GroupBack,
	"rhomboids":             GroupBack,
	"traps":                 GroupBack,
	"trapezius":             GroupBack,
	"middle trapezius":      GroupBack,
	"lower trapezius":       GroupBack,
	"upper back":            GroupBack,
	"lower back":            GroupBack,
	"spine":                 GroupBack,
	"erector spinae":        GroupBack,
	"deltoids":              GroupShoulders,
	"delts":                 GroupShoulders,
	"anterior deltoids":     GroupShoulders,
	"lateral deltoids":      GroupShoulders,
	"posterior deltoids":    GroupShoulders,
	"rotator cuff":          GroupShoulders,
	"biceps":                GroupBiceps,
	"brachialis":            GroupBiceps,
	"brachioradialis":       GroupBiceps,
	"triceps":               GroupTriceps,
	"forearms":              GroupForearms,
	"forearm flexors":       GroupForearms,
	"forearm extensors":     GroupForearms,
	"grip muscles":          GroupForearms,
	"wrist flexors":         GroupForearms,
	"quads":                 GroupQuads,
	"quadriceps":            GroupQuads,
	"hamstrings":            GroupHamstrings,
	"glutes":                GroupGlutes,
	"gluteus maximus":       GroupGlutes,
	"adductors":             GroupQuads,
	"abductors":             GroupGlutes,
	"hip flexors":           GroupQuads,
	"calves":                GroupCalves,
	"soleus":                GroupCalves,
	"abs":                   GroupCore,
	"abdominals":            GroupCore,
	"obliques":              GroupCore,
	"lower abs":             GroupCore,
	"core":                  GroupCore,
	"cardiovascular":        GroupCardio,
	"cardiovascular system": GroupCardio,
	"full body":             GroupFullBody,
}

// GroupForMuscle resolves a catalog target-muscle string to its group.
func GroupForMuscle(muscle string) MuscleGroup {
	if g, ok := muscleTaxonomy[strings.ToLower(strings.TrimSpace(muscle))]; ok {
		return g
	}
	return GroupOther
}

// AdjacentGroups returns the groups the scheduler may relax into when a
// filter leaves a group with no viable candidates. Ordering is fixed so
// relaxation stays deterministic.
var AdjacentGroups = map[MuscleGroup][]MuscleGroup{
	GroupChest:      {GroupShoulders, GroupTriceps},
	GroupBack:       {GroupBiceps, GroupShoulders},
	GroupShoulders:  {GroupChest, GroupTriceps},
	GroupBiceps:     {GroupBack, GroupForearms},
	GroupTriceps:    {GroupChest, GroupShoulders},
	GroupForearms:   {GroupBiceps, GroupBack},
	GroupQuads:      {GroupGlutes, GroupHamstrings},
	GroupHamstrings: {GroupGlutes, GroupQuads},
	GroupGlutes:     {GroupHamstrings, GroupQuads},
	GroupCalves:     {GroupQuads, GroupHamstrings},
	GroupCore:       {GroupFullBody},
	GroupCardio:     {GroupFullBody, GroupCore},
	GroupFullBody:   {GroupCore, GroupCardio},
}
