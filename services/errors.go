package services

import "fmt"

// The error types below are the service-layer taxonomy. Every operation is a
// single document read or write, so all of them are terminal: nothing is
// retried and nothing needs rolling back.

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced identifier that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// GeocodeError reports an address that could not be resolved to coordinates.
type GeocodeError struct {
	Address string
	Err     error
}

func (e GeocodeError) Error() string {
	return fmt.Sprintf("unable to locate %q", e.Address)
}

func (e GeocodeError) Unwrap() error { return e.Err }

// AuthError reports rejected credentials or a missing account.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string { return e.Reason }

// ForbiddenError reports an authenticated caller acting on a resource that
// does not belong to them.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string { return e.Reason }
