package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction is driven by static keyword tables rather than conditional
// chains so each rule stays independently testable. Matching is
// case-insensitive and order-insensitive across rules; within the goal
// table the first matching entry wins.

var (
	ageRe  = regexp.MustCompile(`(\d{1,3})\s*(?:-|\s)?\s*(?:years?\s*old|years?\b|yrs?\b|yo\b)`)
	ageRe2 = regexp.MustCompile(`\bage[:\s]+(\d{1,3})`)
	daysRe = regexp.MustCompile(`(\d)\s*(?:x\s*)?days?\b`)
)

// goalTable is ordered: multi-word synonyms sit above the looser
// single-word ones they would otherwise shadow.
var goalTable = []struct {
	goal     Goal
	keywords []string
}{
	{GoalWeightLoss, []string{"weight loss", "lose weight", "fat loss", "lose fat", "cutting", "slim down"}},
	{GoalMuscleGain, []string{"muscle gain", "build muscle", "gain muscle", "muscle", "bulk", "mass", "hypertrophy"}},
	{GoalStrength, []string{"strength", "strong", "powerlifting", "lifting"}},
	{GoalEndurance, []string{"endurance", "cardio", "running", "marathon", "stamina"}},
	{GoalToning, []string{"toning", "tone", "lean", "definition"}},
}

var levelTable = []struct {
	level    Level
	keywords []string
}{
	{LevelBeginner, []string{"beginner", "new to", "never trained", "just starting", "first time"}},
	{LevelAdvanced, []string{"advanced", "experienced", "expert", "competitive"}},
}

// locationTable maps location phrases; the bodyweight phrases fold into
// Home because they resolve to the same equipment class.
var locationTable = []struct {
	location Location
	keywords []string
}{
	{LocationPark, []string{"park", "outdoor", "outside"}},
	{LocationHome, []string{"home", "house", "apartment", "no equipment", "bodyweight", "body weight"}},
	{LocationGym, []string{"gym", "fitness center", "health club"}},
}

var bodyTypeTable = []struct {
	bodyType BodyType
	keywords []string
}{
	{BodyEctomorph, []string{"ectomorph", "skinny", "hard gainer", "hardgainer"}},
	{BodyEndomorph, []string{"endomorph", "stocky"}},
	{BodyMesomorph, []string{"mesomorph", "athletic build"}},
}

// injuryVocabulary is the fixed set of body-region tags the rules engine
// understands. Matching is substring-tolerant ("knees", "lower back pain").
var injuryVocabulary = []string{"knee", "back", "shoulder", "wrist", "ankle", "hip", "neck"}

// Parse extracts a Profile from free text. It is a total function: any
// input, including the empty string, yields a complete valid profile with
// unrecognized fields at their defaults.
func Parse(text string) Profile {
	p := Default()
	lower := strings.ToLower(text)
	words := fields(lower)

	if age, ok := extractAge(lower); ok {
		p.Age = age
	}
	p.Gender = extractGender(lower, words)

	for _, entry := range goalTable {
		if containsAny(lower, entry.keywords) {
			p.Goal = entry.goal
			break
		}
	}
	for _, entry := range levelTable {
		if containsAny(lower, entry.keywords) {
			p.Level = entry.level
			break
		}
	}
	for _, entry := range locationTable {
		if containsAny(lower, entry.keywords) {
			p.Location = entry.location
			break
		}
	}
	for _, entry := range bodyTypeTable {
		if containsAny(lower, entry.keywords) {
			p.BodyType = entry.bodyType
			break
		}
	}

	if m := daysRe.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			p.DaysPerWeek = clampInt(days, 1, 7)
		}
	}

	p.Injuries = extractInjuries(lower)

	return p
}

func extractAge(lower string) (int, bool) {
	m := ageRe.FindStringSubmatch(lower)
	if m == nil {
		m = ageRe2.FindStringSubmatch(lower)
	}
	if m == nil {
		return 0, false
	}
	age, err := strconv.Atoi(m[1])
	if err != nil || age < 10 || age > 100 {
		return 0, false
	}
	return age, true
}

func extractGender(lower string, words map[string]bool) Gender {
	// Female first: "female" contains "male" as a substring, so the
	// male check runs on whole words only.
	if strings.Contains(lower, "female") || strings.Contains(lower, "woman") || strings.Contains(lower, "girl") || words["f"] {
		return GenderFemale
	}
	if words["male"] || words["man"] || words["boy"] || words["m"] {
		return GenderMale
	}
	return GenderUnspecified
}

func extractInjuries(lower string) []string {
	var injuries []string
	seen := map[string]bool{}
	for _, region := range injuryVocabulary {
		if strings.Contains(lower, region) && !seen[region] {
			injuries = append(injuries, region)
			seen[region] = true
		}
	}
	if injuries == nil {
		injuries = []string{}
	}
	return injuries
}

// fields splits text into a word-presence set, stripping punctuation so
// tokens like "male," still match.
func fields(lower string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		words[w] = true
	}
	return words
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
