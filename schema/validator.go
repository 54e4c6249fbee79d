// Package schema holds the request inputs and the struct validator shared by the
// API server and the client form controllers, so both reject the same input with
// the same messages.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	decimalRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	colorRe   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// New returns a validator that reports fields by their json names and knows the
// "decimal" rule used for prices.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		return decimalRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

// Fields flattens a validator error into json-field -> message. Errors that are
// not validation errors produce nil.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "decimal":
		return "must be a decimal amount, e.g. 299.00"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// SettingValue checks value against a website setting type and returns a message
// describing the problem, or "" when the value fits.
func SettingValue(typ, value string) string {
	switch typ {
	case "number":
		if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return "must be a number"
		}
	case "boolean":
		if value != "true" && value != "false" {
			return "must be true or false"
		}
	case "json":
		if !json.Valid([]byte(value)) {
			return "must be valid JSON"
		}
	case "url":
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "must be an absolute URL"
		}
	case "color":
		if !colorRe.MatchString(value) {
			return "must be a hex color such as #1e40af"
		}
	}
	return ""
}
