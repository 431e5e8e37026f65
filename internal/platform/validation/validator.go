// Package validation turns untrusted input structs into either a normalized
// record or an apperror with one message list per violated field. Field names
// in the result follow the json tag, matching what clients submitted.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	return v
}

// CrossFieldValidator is implemented by inputs with rules spanning multiple
// fields, like the doctor availability window. It runs only after all
// per-field rules pass, so cross rules can assume well-formed fields.
type CrossFieldValidator interface {
	ValidateCross() map[string][]string
}

// Struct validates in and returns nil or a KindValidation apperror listing
// every violated field. It performs no I/O.
func Struct(in any) error {
	fields := map[string][]string{}

	if err := validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.Persistence(err)
		}
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], messageFor(fe))
		}
	}

	if len(fields) == 0 {
		if cv, ok := in.(CrossFieldValidator); ok {
			for field, msgs := range cv.ValidateCross() {
				fields[field] = append(fields[field], msgs...)
			}
		}
	}

	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid4", "uuid":
		return "must be a valid identifier"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "hhmm":
		return "must be a time in HH:MM format"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	default:
		return "is invalid"
	}
}

// NilIfEmpty normalizes optional string fields: an empty submission becomes
// absent (NULL), never an empty string in storage.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
