package workouts

import (
	"strings"
)

var Category = struct {
	All         string
	Strength    string
	Cardio      string
	Flexibility string
	Balance     string
	Core        string
}{
	All:         "All",
	Strength:    "Strength",
	Cardio:      "Cardio",
	Flexibility: "Flexibility",
	Balance:     "Balance",
	Core:        "Core",
}

var Categories = []string{
	Category.Strength,
	Category.Cardio,
	Category.Flexibility,
	Category.Balance,
	Category.Core,
}

var Difficulty = struct {
	Easy   string
	Medium string
	Hard   string
}{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
}

type Exercise struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	BodyPart   string `json:"bodyPart"`
	Difficulty string `json:"difficulty"`
}

// IsValidCategory accepts one of Categories, or All/empty meaning any.
func IsValidCategory(category string) bool {
	if category == "" || category == Category.All {
		return true
	}
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Library is the exercise catalogue a trainer picks from when building templates.
type Library []Exercise

// Filter keeps exercises of the given category whose name or body part contains search.
func (l Library) Filter(category, search string) Library {
	search = strings.ToLower(strings.TrimSpace(search))
	anyCategory := category == "" || category == Category.All

	filtered := Library{}
	for _, e := range l {
		if !anyCategory && e.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.BodyPart), search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func (l Library) ByID(id int) (Exercise, bool) {
	for _, e := range l {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}
