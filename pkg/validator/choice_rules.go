package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InListString validates that value is one of allowedValues.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s, got %q", strings.Join(allowedValues, ", "), value),
			TranslationKey: "validation.in_list",
		},
	}
}
