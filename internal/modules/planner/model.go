// README: Trip request, preference tags and itinerary definitions.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidRequest is returned when a request carries an out-of-range number
// or an enum value outside its known set.
var ErrInvalidRequest = errors.New("invalid request")

type Budget int

const (
	BudgetLow Budget = iota + 1
	BudgetModerate
	BudgetLuxury
)

type Preference int

// Declaration order is the order activities appear within a day.
const (
	FamousLandmarks Preference = iota + 1
	Museums
	HiddenGems
	ScenicWalks
	FoodExperiences
	Relaxation
)

// Dietary has DietNone as its zero value so an unset preference renders as "None".
type Dietary int

const (
	DietNone Dietary = iota
	DietVegetarian
	DietVegan
	DietGlutenFree
)

type Accommodation int

const (
	StayBudget Accommodation = iota + 1
	StayModerate
	StayLuxury
	StayCentralLocation
)

// TripRequest is built fresh for every submission and owned by that call.
type TripRequest struct {
	Destination        string        `json:"destination"`
	DurationDays       int           `json:"duration_days" validate:"min=1,max=30"`
	Budget             Budget        `json:"budget" validate:"known"`
	Purpose            string        `json:"purpose"`
	Preferences        PreferenceSet `json:"preferences"`
	DietaryPreference  Dietary       `json:"dietary_preference" validate:"known"`
	WalkingToleranceKm int           `json:"walking_tolerance_km" validate:"min=1,max=20"`
	Accommodation      Accommodation `json:"accommodation" validate:"known"`
}

type DayPlan struct {
	DayNumber  int      `json:"day_number"`
	Activities []string `json:"activities"`
}

// Title is the section heading shown for the day.
func (d DayPlan) Title() string {
	return fmt.Sprintf("Day %d", d.DayNumber)
}

type Itinerary struct {
	Days []DayPlan `json:"days"`
}

// Markdown renders one "### Day n" section per day with the activities as a list.
func (it Itinerary) Markdown() string {
	var b strings.Builder
	for i, day := range it.Days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("### ")
		b.WriteString(day.Title())
		b.WriteString("\n")
		for _, a := range day.Activities {
			b.WriteString("- ")
			b.WriteString(a)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Enum codes and labels
// ---------------------------------------------------------------------------

// enumEntry maps an enum value to its wire code and the label shown on the form.
type enumEntry struct {
	value int
	code  string
	label string
}

var budgetEntries = []enumEntry{
	{int(BudgetLow), "low", "Low"},
	{int(BudgetModerate), "moderate", "Moderate"},
	{int(BudgetLuxury), "luxury", "Luxury"},
}

var preferenceEntries = []enumEntry{
	{int(FamousLandmarks), "famous_landmarks", "Famous landmarks"},
	{int(Museums), "museums", "Museums"},
	{int(HiddenGems), "hidden_gems", "Hidden gems"},
	{int(ScenicWalks), "scenic_walks", "Scenic walks"},
	{int(FoodExperiences), "food_experiences", "Food experiences"},
	{int(Relaxation), "relaxation", "Relaxation"},
}

var dietaryEntries = []enumEntry{
	{int(DietNone), "none", "None"},
	{int(DietVegetarian), "vegetarian", "Vegetarian"},
	{int(DietVegan), "vegan", "Vegan"},
	{int(DietGlutenFree), "gluten_free", "Gluten-free"},
}

var accommodationEntries = []enumEntry{
	{int(StayBudget), "budget", "Budget"},
	{int(StayModerate), "moderate", "Moderate"},
	{int(StayLuxury), "luxury", "Luxury"},
	{int(StayCentralLocation), "central_location", "Central Location"},
}

func lookupEntry(entries []enumEntry, v int) (enumEntry, bool) {
	for _, e := range entries {
		if e.value == v {
			return e, true
		}
	}
	return enumEntry{}, false
}

// foldKey reduces "Gluten-free", "gluten_free" and "GlutenFree" to the same key.
func foldKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func parseEntry(kind string, entries []enumEntry, s string) (int, error) {
	key := foldKey(s)
	if key != "" {
		for _, e := range entries {
			if key == foldKey(e.code) || key == foldKey(e.label) {
				return e.value, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidRequest, kind, s)
}

func entryLabel(kind string, entries []enumEntry, v int) string {
	if e, ok := lookupEntry(entries, v); ok {
		return e.label
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func entryCode(kind string, entries []enumEntry, v int) ([]byte, error) {
	e, ok := lookupEntry(entries, v)
	if !ok {
		return nil, fmt.Errorf("%w: unknown %s %d", ErrInvalidRequest, kind, v)
	}
	return []byte(e.code), nil
}

func ParseBudget(s string) (Budget, error) {
	v, err := parseEntry("budget", budgetEntries, s)
	return Budget(v), err
}

func (b Budget) String() string { return entryLabel("Budget", budgetEntries, int(b)) }

func (b Budget) Valid() bool {
	_, ok := lookupEntry(budgetEntries, int(b))
	return ok
}

func (b Budget) MarshalText() ([]byte, error) { return entryCode("budget", budgetEntries, int(b)) }

func (b *Budget) UnmarshalText(text []byte) error {
	v, err := ParseBudget(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func ParsePreference(s string) (Preference, error) {
	v, err := parseEntry("preference", preferenceEntries, s)
	return Preference(v), err
}

func (p Preference) String() string { return entryLabel("Preference", preferenceEntries, int(p)) }

func (p Preference) Valid() bool {
	_, ok := lookupEntry(preferenceEntries, int(p))
	return ok
}

func (p Preference) MarshalText() ([]byte, error) {
	return entryCode("preference", preferenceEntries, int(p))
}

func (p *Preference) UnmarshalText(text []byte) error {
	v, err := ParsePreference(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func ParseDietary(s string) (Dietary, error) {
	v, err := parseEntry("dietary preference", dietaryEntries, s)
	return Dietary(v), err
}

// String returns the form label; the food template substitutes it verbatim.
func (d Dietary) String() string { return entryLabel("Dietary", dietaryEntries, int(d)) }

func (d Dietary) Valid() bool {
	_, ok := lookupEntry(dietaryEntries, int(d))
	return ok
}

func (d Dietary) MarshalText() ([]byte, error) {
	return entryCode("dietary preference", dietaryEntries, int(d))
}

func (d *Dietary) UnmarshalText(text []byte) error {
	v, err := ParseDietary(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func ParseAccommodation(s string) (Accommodation, error) {
	v, err := parseEntry("accommodation", accommodationEntries, s)
	return Accommodation(v), err
}

func (a Accommodation) String() string {
	return entryLabel("Accommodation", accommodationEntries, int(a))
}

func (a Accommodation) Valid() bool {
	_, ok := lookupEntry(accommodationEntries, int(a))
	return ok
}

func (a Accommodation) MarshalText() ([]byte, error) {
	return entryCode("accommodation", accommodationEntries, int(a))
}

func (a *Accommodation) UnmarshalText(text []byte) error {
	v, err := ParseAccommodation(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
