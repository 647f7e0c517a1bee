// Package catalog holds the read-only exercise catalog and the muscle
// taxonomy the planner schedules against. The catalog is loaded once at
// process start and never mutated afterwards, so concurrent reads are
// safe without locking.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fitglue/planner/pkg/domain/profile"
)

// ErrCatalogEmpty means nothing can be scheduled at all. This is the one
// fatal condition in the plan pipeline.
var ErrCatalogEmpty = errors.New("exercise catalog is empty")

// ExerciseSpec is one catalog entry. Immutable, shared across requests.
type ExerciseSpec struct {
	Name          string   `json:"name"`
	TargetMuscles []string `json:"targetMuscles"`
	Equipment     []string `json:"equipments"`
	BodyParts     []string `json:"bodyParts"`
	Category      string   `json:"category"`
}

// PrimaryGroup resolves the exercise's first recognized target muscle to
// its scheduling group.
func (e *ExerciseSpec) PrimaryGroup() MuscleGroup {
	for _, m := range e.TargetMuscles {
		if g := GroupForMuscle(m); g != GroupOther {
			return g
		}
	}
	return GroupOther
}

// Groups returns every group the exercise touches, primary first.
func (e *ExerciseSpec) Groups() []MuscleGroup {
	var groups []MuscleGroup
	seen := map[MuscleGroup]bool{}
	for _, m := range e.TargetMuscles {
		g := GroupForMuscle(m)
		if g != GroupOther && !seen[g] {
			groups = append(groups, g)
			seen[g] = true
		}
	}
	return groups
}

// categoryRank orders exercise categories for selection: compound
// movements schedule before isolation work, accessories last.
var categoryRank = map[string]int{
	"compound":   0,
	"cardio":     1,
	"isolation":  2,
	"core":       3,
	"stretching": 4,
}

// equipmentClass maps a training location to the equipment tags usable
// there. LocationGym is absent: gym access allows everything.
var equipmentClass = map[profile.Location][]string{
	profile.LocationHome:       {"body weight", "dumbbell", "resistance band", "kettlebell"},
	profile.LocationPark:       {"body weight", "resistance band"},
	profile.LocationBodyweight: {"body weight"},
}

// EquipmentFor returns the allowed equipment tags for a location, or nil
// when every tag is allowed.
func EquipmentFor(loc profile.Location) []string {
	return equipmentClass[loc]
}

// EquipmentAllowed reports whether the exercise's required equipment is
// available at the given location.
func EquipmentAllowed(e *ExerciseSpec, loc profile.Location) bool {
	allowed := equipmentClass[loc]
	if allowed == nil {
		return true
	}
	if len(e.Equipment) == 0 {
		return true
	}
	for _, req := range e.Equipment {
		if !containsFold(allowed, req) {
			return false
		}
	}
	return true
}

// Catalog indexes the exercise list for planning. Entry order is the
// catalog insertion order and serves as the deterministic tie-breaker.
type Catalog struct {
	exercises []ExerciseSpec
	byName    map[string]*ExerciseSpec
	byGroup   map[MuscleGroup][]*ExerciseSpec
}

// New builds a catalog from a list of specs. Returns ErrCatalogEmpty for
// an empty list.
func New(specs []ExerciseSpec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, ErrCatalogEmpty
	}

	c := &Catalog{
		exercises: specs,
		byName:    make(map[string]*ExerciseSpec, len(specs)),
		byGroup:   make(map[MuscleGroup][]*ExerciseSpec),
	}
	for i := range c.exercises {
		ex := &c.exercises[i]
		c.byName[strings.ToLower(ex.Name)] = ex
		for _, g := range ex.Groups() {
			c.byGroup[g] = append(c.byGroup[g], ex)
		}
	}
	return c, nil
}

// Load reads a catalog from a JSON file. An empty or unreadable file is
// surfaced as a fatal error per the plan pipeline's contract.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var specs []ExerciseSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(specs)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.exercises) }

// ByName looks up an exercise by name, case-insensitively.
func (c *Catalog) ByName(name string) (*ExerciseSpec, bool) {
	ex, ok := c.byName[strings.ToLower(name)]
	return ex, ok
}

// ByGroup returns all exercises touching the group, in insertion order.
func (c *Catalog) ByGroup(g MuscleGroup) []*ExerciseSpec {
	return c.byGroup[g]
}

// Candidates returns the exercises for a group that the location's
// equipment supports, ranked compound-first with catalog insertion order
// breaking ties. The sort is stable by construction: candidates are
// collected in insertion order and sorted with a stable sort on rank.
func (c *Catalog) Candidates(g MuscleGroup, loc profile.Location) []*ExerciseSpec {
	var out []*ExerciseSpec
	for _, ex := range c.byGroup[g] {
		if EquipmentAllowed(ex, loc) {
			out = append(out, ex)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i]) < rankOf(out[j])
	})
	return out
}

func rankOf(e *ExerciseSpec) int {
	if r, ok := categoryRank[strings.ToLower(e.Category)]; ok {
		return r
	}
	return len(categoryRank)
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
