// README: Planner service validates a request, then normalizes and generates.
package planner

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Plan is the result of one submission.
type Plan struct {
	Request   TripRequest `json:"request"`
	Itinerary Itinerary   `json:"itinerary"`
}

type Service struct {
	validate *validator.Validate
}

func NewService() *Service {
	return &Service{validate: newValidator()}
}

// Plan rejects invalid input before doing any work; otherwise it cannot fail.
func (s *Service) Plan(req TripRequest) (Plan, error) {
	if err := s.Validate(req); err != nil {
		return Plan{}, err
	}
	normalized := Normalize(req)
	return Plan{Request: normalized, Itinerary: Generate(normalized)}, nil
}

// Validate returns an error wrapping ErrInvalidRequest describing every bad field.
func (s *Service) Validate(req TripRequest) error {
	var problems []string

	err := s.validate.Struct(req)
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	for _, tag := range req.Preferences.Tags() {
		if !tag.Valid() {
			problems = append(problems, fmt.Sprintf("preferences has unknown value %d", int(tag)))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, "; "))
}

type validatable interface {
	Valid() bool
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "known", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(validatable)
		return ok && e.Valid()
	})
	return v
}

// mustRegister panics when a custom rule cannot be registered; a missing rule
// would otherwise fail every field tagged with it.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("planner: register validation %q: %v", tag, err))
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "known":
		return fmt.Sprintf("%s has unknown value %v", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
