package forms

import "errors"

var (
	ErrLoadForm   = errors.New("forms: failed to load form")
	ErrSubmitForm = errors.New("forms: failed to submit form")
	ErrNoForm     = errors.New("forms: no form loaded")
)
