package providers

import (
	"errors"
	"fmt"
)

// ErrEmpty signals that the upstream answered successfully but had nothing
// matching the query. Callers distinguish it from transport and schema
// failures with errors.Is; the interactive layer displays all three the same
// way ("nothing found") but they are separate outcomes.
var ErrEmpty = errors.New("no matching data upstream")

// StatusError captures a non-success HTTP response from an upstream endpoint.
type StatusError struct {
	Provider   string
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Endpoint, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// SchemaError captures a structural mismatch in an upstream payload: an
// expected nested object or list was absent entirely. Leaf-level gaps degrade
// to placeholders instead and never produce a SchemaError.
type SchemaError struct {
	Provider string
	Path     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: payload missing %s", e.Provider, e.Path)
}

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var sErr *SchemaError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// Retryable reports whether another attempt could plausibly succeed. Empty
// results and schema mismatches are stable answers; transport-class failures
// are worth retrying.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrEmpty) {
		return false
	}
	if _, ok := AsSchemaError(err); ok {
		return false
	}
	return true
}
