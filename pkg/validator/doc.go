// Package validator builds small validation rules and applies them in one
// pass.
//
// Every rule function captures a field name and a value and returns a Rule
// with a Check func and the error to report. Apply evaluates the rules and
// aggregates failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("username", username),
//	    validator.MinLen("username", username, 3),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fields := verrs.Map()
//	}
//
// Rules hold no state, so they are safe to build from runtime data such as
// form schemas.
package validator
