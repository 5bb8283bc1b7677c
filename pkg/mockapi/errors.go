package mockapi

import "errors"

var (
	ErrLoadSchemas = errors.New("mockapi: failed to load form schemas")
	ErrInvalidBody = errors.New("mockapi: invalid request body")
)
