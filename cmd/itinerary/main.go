// README: Command-line planner; renders an itinerary from flags as Markdown or JSON.
package main

import (
	"encoding"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"itinerary/internal/modules/planner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := planner.DefaultRequest()

	fs := flag.NewFlagSet("itinerary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	destination := fs.String("destination", def.Destination, "Where you are traveling to")
	days := fs.Int("days", def.DurationDays, "Trip length in days (1-30)")
	budget := fs.String("budget", codeOf(def.Budget), "Budget: low, moderate, luxury")
	purpose := fs.String("purpose", def.Purpose, "Purpose of the trip")
	prefs := fs.String("prefs", joinTags(def.Preferences), "Comma-separated preferences")
	diet := fs.String("diet", codeOf(def.DietaryPreference), "Dietary preference: none, vegetarian, vegan, gluten_free")
	walk := fs.Int("walk", def.WalkingToleranceKm, "Daily walking tolerance in km (1-20)")
	stay := fs.String("stay", codeOf(def.Accommodation), "Accommodation: budget, moderate, luxury, central_location")
	asJSON := fs.Bool("json", false, "Print the plan as JSON instead of Markdown")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	req, err := buildRequest(*destination, *days, *budget, *purpose, *prefs, *diet, *walk, *stay)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	plan, err := planner.NewService().Plan(req)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}
	fmt.Fprint(stdout, plan.Itinerary.Markdown())
	return 0
}

func buildRequest(destination string, days int, budget, purpose, prefs, diet string, walk int, stay string) (planner.TripRequest, error) {
	req := planner.TripRequest{
		Destination:        destination,
		DurationDays:       days,
		Purpose:            purpose,
		Preferences:        planner.NewPreferenceSet(),
		WalkingToleranceKm: walk,
	}

	var err error
	if req.Budget, err = planner.ParseBudget(budget); err != nil {
		return req, err
	}
	if req.DietaryPreference, err = planner.ParseDietary(diet); err != nil {
		return req, err
	}
	if req.Accommodation, err = planner.ParseAccommodation(stay); err != nil {
		return req, err
	}
	for _, raw := range strings.Split(prefs, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		tag, err := planner.ParsePreference(raw)
		if err != nil {
			return req, err
		}
		req.Preferences.Add(tag)
	}
	return req, nil
}

func codeOf(v encoding.TextMarshaler) string {
	b, _ := v.MarshalText()
	return string(b)
}

func joinTags(s planner.PreferenceSet) string {
	codes := make([]string, 0, len(s))
	for _, t := range s.Tags() {
		codes = append(codes, codeOf(t))
	}
	return strings.Join(codes, ",")
}
