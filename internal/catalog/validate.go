package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/tinysteps/internal/model"
)

var validate = newValidator()

// newValidator reports fields by their TOML key, the spelling catalogue
// authors see in files.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(tomlName)
	return v
}

func tomlName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidationError lists every problem found in a catalogue.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid catalogue: " + strings.Join(e.Problems, "; ")
}

func validateCatalogue(records []model.Record, groups []model.AgeGroup) error {
	var problems []string

	for i, g := range groups {
		label := fmt.Sprintf("age group #%d", i+1)
		if g.ID != "" {
			label = fmt.Sprintf("age group %q", g.ID)
		}
		problems = append(problems, structProblems(label, toFileAgeGroup(g))...)
	}

	seen := make(map[string]int, len(records))
	for i, r := range records {
		label := describe(r, i)
		problems = append(problems, structProblems(label, toFileRecord(r))...)
		if r.EndAgeMonths != nil && *r.EndAgeMonths < r.StartAgeMonths {
			problems = append(problems, fmt.Sprintf("%s: end age %d is before start age %d", label, *r.EndAgeMonths, r.StartAgeMonths))
		}
		if r.ID == "" {
			continue
		}
		if first, ok := seen[r.ID]; ok {
			problems = append(problems, fmt.Sprintf("%s: duplicate id (first used by record #%d)", label, first+1))
			continue
		}
		seen[r.ID] = i
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func structProblems(label string, s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("%s: %v", label, err)}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s: %s", label, formatFieldError(fe, reflect.TypeOf(s))))
	}
	return out
}

func formatFieldError(e validator.FieldError, parent reflect.Type) string {
	field := fieldPath(e)
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", field, paramName(parent, e.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldPath drops the struct name from the namespace, so that
// fileRecord.link[0].url reads as link[0].url.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

// paramName resolves a cross-field parameter such as MinMonths to its key.
func paramName(parent reflect.Type, field string) string {
	if parent != nil && parent.Kind() == reflect.Struct {
		if fld, ok := parent.FieldByName(field); ok {
			return tomlName(fld)
		}
	}
	return field
}
