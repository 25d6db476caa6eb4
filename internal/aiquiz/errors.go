package aiquiz

import (
	"errors"
	"fmt"
)

var ErrMissingFields = errors.New("grade, unit and topic are required")

// ParseError kinds.
var (
	ErrNoJSONFound      = errors.New("no JSON object found in model output")
	ErrMalformedJSON    = errors.New("malformed JSON in model output")
	ErrInvalidShape     = errors.New(`model output is not an object with a "questions" array`)
	ErrNoValidQuestions = errors.New("no valid questions in model output")
)

// ParseError reports why raw model output could not be turned into
// questions. errors.Is matches it against its Kind.
type ParseError struct {
	Kind error
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *ParseError) Is(target error) bool { return target == e.Kind }

func (e *ParseError) Unwrap() error { return e.Err }
