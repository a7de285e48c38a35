package planner

import "strings"

const adventurePrefix = "adventure"

// Normalize returns a copy of req with tags inferred from budget and purpose.
// It only ever adds tags and is idempotent.
func Normalize(req TripRequest) TripRequest {
	out := req
	out.Preferences = req.Preferences.Clone()

	if out.Budget == BudgetModerate {
		out.Preferences.Add(HiddenGems)
	}
	if strings.HasPrefix(strings.ToLower(out.Purpose), adventurePrefix) {
		out.Preferences.Add(ScenicWalks)
	}
	return out
}
