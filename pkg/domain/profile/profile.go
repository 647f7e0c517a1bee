// Package profile turns free-text fitness requests into a structured,
// always-valid user profile.
package profile

// Gender of the requesting user, as far as the text reveals it.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// Goal is the primary training objective.
type Goal string

const (
	GoalMuscleGain Goal = "muscle_gain"
	GoalWeightLoss Goal = "weight_loss"
	GoalStrength   Goal = "strength"
	GoalEndurance  Goal = "endurance"
	GoalToning     Goal = "toning"
	GoalGeneral    Goal = "general"
)

// Level is the self-reported experience level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Location describes where the user trains, which determines the
// equipment class available to the scheduler.
type Location string

const (
	LocationGym        Location = "gym"
	LocationHome       Location = "home"
	LocationPark       Location = "park"
	LocationBodyweight Location = "bodyweight"
)

// BodyType is the user's somatotype.
type BodyType string

const (
	BodyEctomorph BodyType = "ectomorph"
	BodyMesomorph BodyType = "mesomorph"
	BodyEndomorph BodyType = "endomorph"
)

// Profile is the structured form of a fitness request. Every field is
// always populated: unrecognized inputs fall back to the documented
// defaults, never to an error. Immutable once parsed.
type Profile struct {
	Age         int      `json:"age"`
	Gender      Gender   `json:"gender"`
	Goal        Goal     `json:"goal"`
	Level       Level    `json:"fitness_level"`
	DaysPerWeek int      `json:"days_per_week"`
	Location    Location `json:"equipment"`
	BodyType    BodyType `json:"body_type"`
	Injuries    []string `json:"injuries"`
}

// Defaults applied when the text does not mention a field.
const (
	DefaultAge         = 25
	DefaultDaysPerWeek = 3
)

// Default returns a profile with every field at its documented default.
func Default() Profile {
	return Profile{
		Age:         DefaultAge,
		Gender:      GenderUnspecified,
		Goal:        GoalGeneral,
		Level:       LevelIntermediate,
		DaysPerWeek: DefaultDaysPerWeek,
		Location:    LocationGym,
		BodyType:    BodyMesomorph,
		Injuries:    []string{},
	}
}

// HasInjury reports whether the given body region was flagged.
func (p Profile) HasInjury(region string) bool {
	for _, inj := range p.Injuries {
		if inj == region {
			return true
		}
	}
	return false
}
