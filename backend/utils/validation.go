package utils

import (
	"academy/schema"
)

var validate = schema.New()

// Validate runs the shared struct rules and returns field messages, or nil when
// the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if fields := schema.Fields(err); fields != nil {
		return fields
	}
	return map[string]string{"_": err.Error()}
}
