package planner

const (
	MinDurationDays = 1
	MaxDurationDays = 30
	MinWalkingKm    = 1
	MaxWalkingKm    = 20
)

type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Range struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// Catalogue describes every choice the trip form offers.
type Catalogue struct {
	Budgets            []Option    `json:"budgets"`
	Preferences        []Option    `json:"preferences"`
	DietaryPreferences []Option    `json:"dietary_preferences"`
	Accommodations     []Option    `json:"accommodations"`
	DurationDays       Range       `json:"duration_days"`
	WalkingToleranceKm Range       `json:"walking_tolerance_km"`
	Defaults           TripRequest `json:"defaults"`
}

// DefaultRequest is the form as first shown to a visitor.
func DefaultRequest() TripRequest {
	return TripRequest{
		Destination:        "Paris",
		DurationDays:       5,
		Budget:             BudgetLow,
		Purpose:            "Leisure",
		Preferences:        NewPreferenceSet(FamousLandmarks, FoodExperiences),
		DietaryPreference:  DietNone,
		WalkingToleranceKm: 10,
		Accommodation:      StayBudget,
	}
}

func Options() Catalogue {
	defaults := DefaultRequest()
	return Catalogue{
		Budgets:            toOptions(budgetEntries),
		Preferences:        toOptions(preferenceEntries),
		DietaryPreferences: toOptions(dietaryEntries),
		Accommodations:     toOptions(accommodationEntries),
		DurationDays:       Range{Min: MinDurationDays, Max: MaxDurationDays, Default: defaults.DurationDays},
		WalkingToleranceKm: Range{Min: MinWalkingKm, Max: MaxWalkingKm, Default: defaults.WalkingToleranceKm},
		Defaults:           defaults,
	}
}

func toOptions(entries []enumEntry) []Option {
	out := make([]Option, len(entries))
	for i, e := range entries {
		out[i] = Option{Code: e.code, Label: e.label}
	}
	return out
}
