package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, minimum T) Rule {
	return Rule{
		Check: func() bool {
			return value >= minimum
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v, got %v", minimum, value),
			TranslationKey: "validation.min",
		},
	}
}
