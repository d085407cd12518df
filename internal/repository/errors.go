// Package repository contains the data access layer, separated from HTTP
// handlers. This file defines sentinel error values shared across
// repositories so that higher layers can distinguish failure scenarios with
// errors.Is and translate them into HTTP responses.
package repository

import "errors"

// ErrFAQNotFound is returned when an FAQ entry id does not resolve to a
// row, on lookup, update or delete. Handlers should translate this into an
// HTTP 404 response. DeleteMany wraps it with the first missing id.
var ErrFAQNotFound = errors.New("faq not found")

// ErrEmailExists is returned when registering a user whose email is
// already taken. Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
