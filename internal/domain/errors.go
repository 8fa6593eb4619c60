package domain

import "errors"

// Domain errors returned by the public packages. Check them with errors.Is.
var (
	// ErrMissingURI is returned when a request has no target URI.
	ErrMissingURI = errors.New("callapi: uri is required")

	// ErrInvalidMethod is returned for HTTP methods outside GET, POST, PUT, PATCH and DELETE.
	ErrInvalidMethod = errors.New("callapi: invalid method")

	// ErrTargetNotFound is returned by the smoke driver when the callapi binary is missing.
	ErrTargetNotFound = errors.New("callapi: target not found")
)
