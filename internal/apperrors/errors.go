package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateFetch indicates that the remote rates API could not be reached or
// answered with a non-success status.
var ErrRateFetch = errors.New("rate fetch failed")

// ErrRateFetchValidation indicates that the remote rates API answered, but the
// payload did not match the expected schema (wrong base, empty or non-positive
// rates, non-success result).
var ErrRateFetchValidation = errors.New("rate payload validation failed")

// ErrStateCorrupt indicates that persisted currency preferences failed
// validation on load. Callers replace the state with defaults and continue.
var ErrStateCorrupt = errors.New("persisted state corrupt")

// ErrNotReady indicates that the currency context has not finished hydrating.
var ErrNotReady = errors.New("currency context not ready")
