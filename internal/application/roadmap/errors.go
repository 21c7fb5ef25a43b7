package roadmap

import (
	"errors"
	"strings"
)

// SaveValidationMessage is shown when a roadmap cannot be saved
const SaveValidationMessage = "Please add a title and at least one milestone to your roadmap."

var (
	// ErrValidation matches any *ValidationError via errors.Is
	ErrValidation = errors.New("roadmap validation failed")
	// ErrInvalidTransition is returned for mode changes the lifecycle forbids
	ErrInvalidTransition = errors.New("invalid roadmap mode transition")
	// ErrSaveInProgress is returned when Save is called while a save is running
	ErrSaveInProgress = errors.New("roadmap save already in progress")
)

// ValidationError reports rejected user input. Fields names the offending
// inputs; Message is meant for the user.
type ValidationError struct {
	Op      string
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Op + ": " + e.Message
	}
	return e.Op + ": " + e.Message + " (" + strings.Join(e.Fields, ", ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
