// Package validator provides small, declarative validation rules.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates every rule and aggregates the failures into a
// ValidationErrors value, which implements error, so a caller reports all
// bad fields at once instead of stopping at the first one.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinNum("UNITKIT_SIGNIFICANT_DIGITS", cfg.SignificantDigits, 0),
//	    validator.InListString("UNITKIT_LOG_FORMAT", cfg.LogFormat, []string{"json", "text"}),
//	    validator.NoError("UNITKIT_CULTURE", cultureErr),
//	)
//	if err != nil {
//	    for _, field := range validator.ExtractValidationErrors(err).Fields() {
//	        // report field
//	    }
//	}
//
// Checks that need an expensive or error-returning parser are run by the
// caller first and adapted with NoError.
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is, and
// ExtractValidationErrors recovers the field-level details from a wrapped
// error.
package validator
