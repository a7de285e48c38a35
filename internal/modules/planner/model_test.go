package planner

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParsePreference_Spellings(t *testing.T) {
	tests := []struct {
		in   string
		want Preference
	}{
		{"famous_landmarks", FamousLandmarks},
		{"FamousLandmarks", FamousLandmarks},
		{"Famous landmarks", FamousLandmarks},
		{"  MUSEUMS ", Museums},
		{"hidden-gems", HiddenGems},
		{"Scenic walks", ScenicWalks},
		{"food_experiences", FoodExperiences},
		{"relaxation", Relaxation},
	}
	for _, tt := range tests {
		got, err := ParsePreference(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParsePreference(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseEnums_Unknown(t *testing.T) {
	if _, err := ParsePreference("nightlife"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("ParsePreference: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := ParseBudget(""); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("ParseBudget: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := ParseDietary("keto"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("ParseDietary: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := ParseAccommodation("hostel"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("ParseAccommodation: expected ErrInvalidRequest, got %v", err)
	}
}

func TestParseEnums_Labels(t *testing.T) {
	if d, err := ParseDietary("Gluten-free"); err != nil || d != DietGlutenFree {
		t.Errorf("ParseDietary(Gluten-free) = %v, %v", d, err)
	}
	if a, err := ParseAccommodation("Central Location"); err != nil || a != StayCentralLocation {
		t.Errorf("ParseAccommodation(Central Location) = %v, %v", a, err)
	}
	if b, err := ParseBudget("Moderate"); err != nil || b != BudgetModerate {
		t.Errorf("ParseBudget(Moderate) = %v, %v", b, err)
	}
}

func TestEnumString_UsesFormLabel(t *testing.T) {
	if DietNone.String() != "None" {
		t.Errorf("DietNone.String() = %q", DietNone.String())
	}
	if DietGlutenFree.String() != "Gluten-free" {
		t.Errorf("DietGlutenFree.String() = %q", DietGlutenFree.String())
	}
	if Budget(0).String() != "Budget(0)" {
		t.Errorf("Budget(0).String() = %q", Budget(0).String())
	}
}

func TestTripRequest_JSON(t *testing.T) {
	body := `{
		"destination": "Paris",
		"duration_days": 3,
		"budget": "Moderate",
		"purpose": "Adventure",
		"preferences": ["relaxation", "Famous landmarks", "relaxation"],
		"dietary_preference": "vegan",
		"walking_tolerance_km": 12,
		"accommodation": "central_location"
	}`

	var req TripRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Budget != BudgetModerate || req.DietaryPreference != DietVegan || req.Accommodation != StayCentralLocation {
		t.Errorf("enums decoded as %v/%v/%v", req.Budget, req.DietaryPreference, req.Accommodation)
	}
	if !reflect.DeepEqual(req.Preferences.Tags(), []Preference{FamousLandmarks, Relaxation}) {
		t.Errorf("preferences = %v", req.Preferences.Tags())
	}

	out, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{
		`"budget":"moderate"`,
		`"preferences":["famous_landmarks","relaxation"]`,
		`"dietary_preference":"vegan"`,
		`"accommodation":"central_location"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("marshalled %s, missing %s", out, want)
		}
	}
}

func TestTripRequest_JSONUnknownTag(t *testing.T) {
	var req TripRequest
	err := json.Unmarshal([]byte(`{"preferences": ["shopping"]}`), &req)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestTripRequest_JSONReplacesDefaultPreferences(t *testing.T) {
	req := DefaultRequest()
	if err := json.Unmarshal([]byte(`{"preferences": []}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(req.Preferences) != 0 {
		t.Errorf("expected empty preferences, got %v", req.Preferences.Tags())
	}
	if req.Destination != "Paris" {
		t.Errorf("expected default destination kept, got %q", req.Destination)
	}
}

func TestPreferenceSet_Add(t *testing.T) {
	s := NewPreferenceSet(Museums)
	if s.Add(Museums) {
		t.Error("Add of existing tag reported true")
	}
	if !s.Add(Relaxation) {
		t.Error("Add of new tag reported false")
	}
	if len(s) != 2 {
		t.Errorf("len = %d, want 2", len(s))
	}
}

func TestPreferenceSet_AddToNil(t *testing.T) {
	var req TripRequest
	if !req.Preferences.Add(Museums) {
		t.Fatal("Add to nil set reported false")
	}
	if !req.Preferences.Has(Museums) || len(req.Preferences) != 1 {
		t.Errorf("preferences = %v", req.Preferences.Tags())
	}
}

func TestNormalize_ZeroRequest(t *testing.T) {
	req := TripRequest{Budget: BudgetModerate}
	out := Normalize(req)
	if !out.Preferences.Has(HiddenGems) {
		t.Errorf("preferences = %v", out.Preferences.Tags())
	}
	if req.Preferences != nil {
		t.Error("Normalize modified the input")
	}
}

func TestPreferenceSet_NilReads(t *testing.T) {
	var s PreferenceSet
	if s.Has(Museums) {
		t.Error("nil set reported membership")
	}
	if got := s.Tags(); len(got) != 0 {
		t.Errorf("Tags() = %v", got)
	}
	if c := s.Clone(); c == nil {
		t.Error("Clone of nil set returned nil")
	}
}

func TestOptions_Catalogue(t *testing.T) {
	c := Options()
	if len(c.Preferences) != 6 || c.Preferences[0].Code != "famous_landmarks" {
		t.Errorf("preferences = %+v", c.Preferences)
	}
	if c.DurationDays != (Range{Min: 1, Max: 30, Default: 5}) {
		t.Errorf("duration range = %+v", c.DurationDays)
	}
	if c.WalkingToleranceKm != (Range{Min: 1, Max: 20, Default: 10}) {
		t.Errorf("walking range = %+v", c.WalkingToleranceKm)
	}
	if err := NewService().Validate(c.Defaults); err != nil {
		t.Errorf("defaults are invalid: %v", err)
	}
}
