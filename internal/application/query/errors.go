package query

import (
	"errors"
	"fmt"
)

// FetchFailureMessage is what the user sees when a query cannot be served
const FetchFailureMessage = "Failed to fetch recommendations. Try again."

var (
	// ErrFetchFailure matches any *FetchError via errors.Is
	ErrFetchFailure = errors.New("recommendation fetch failed")
	// ErrStaleResponse is returned by Submit when a newer query superseded it
	// and its response was discarded
	ErrStaleResponse = errors.New("stale recommendation response discarded")
)

// FetchError wraps a transport or parse failure for one query
type FetchError struct {
	Query string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch recommendations for %q: %v", e.Query, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}

// UserMessage returns the message stored in the controller state
func (e *FetchError) UserMessage() string {
	return FetchFailureMessage
}
