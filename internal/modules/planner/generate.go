// README: Itinerary generator; maps preference tags to activity templates.
package planner

import "fmt"

type activityTemplate struct {
	tag    Preference
	render func(req TripRequest) string
}

// activityTemplates is ordered; a day lists matching activities in this order.
var activityTemplates = [...]activityTemplate{
	{FamousLandmarks, func(req TripRequest) string {
		return fmt.Sprintf("Visit a top landmark in %s.", req.Destination)
	}},
	{Museums, func(req TripRequest) string {
		return fmt.Sprintf("Spend time at a popular museum in %s.", req.Destination)
	}},
	{HiddenGems, func(req TripRequest) string {
		return fmt.Sprintf("Explore a hidden gem or less-known spot in %s.", req.Destination)
	}},
	{ScenicWalks, func(req TripRequest) string {
		return fmt.Sprintf("Take a scenic walk around a famous park or area in %s.", req.Destination)
	}},
	// The dietary label goes in as-is, so DietNone reads "a local None-friendly restaurant".
	{FoodExperiences, func(req TripRequest) string {
		return fmt.Sprintf("Enjoy a meal at a local %s-friendly restaurant.", req.DietaryPreference)
	}},
	{Relaxation, func(req TripRequest) string {
		return "Spend a relaxing evening at your accommodation."
	}},
}

// Activity renders the template for a single tag. ok is false for unknown tags.
func Activity(tag Preference, req TripRequest) (text string, ok bool) {
	for _, t := range activityTemplates {
		if t.tag == tag {
			return t.render(req), true
		}
	}
	return "", false
}

// Generate builds one DayPlan per day. Every day uses the same preference set.
func Generate(req TripRequest) Itinerary {
	days := make([]DayPlan, 0, max(req.DurationDays, 0))
	for d := 1; d <= req.DurationDays; d++ {
		days = append(days, DayPlan{DayNumber: d, Activities: dayActivities(req)})
	}
	return Itinerary{Days: days}
}

func dayActivities(req TripRequest) []string {
	activities := make([]string, 0, len(req.Preferences))
	for _, t := range activityTemplates {
		if req.Preferences.Has(t.tag) {
			activities = append(activities, t.render(req))
		}
	}
	return activities
}
