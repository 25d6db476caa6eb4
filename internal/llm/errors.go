package llm

import (
	"errors"
	"fmt"
)

var errEmptyResponse = errors.New("empty response from model")

// ErrProviderUnavailable indicates the model service is down, unreachable,
// refused the call or returned nothing usable.
type ErrProviderUnavailable struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	name := e.Provider
	if name == "" {
		name = "LLM provider"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", name, e.Err)
	}
	return name + " unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is (or wraps) an ErrProviderUnavailable.
func IsUnavailable(err error) bool {
	var unavail *ErrProviderUnavailable
	return errors.As(err, &unavail)
}
