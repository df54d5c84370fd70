package occupation

import "fmt"

// LoadError represents an error while parsing or checking the occupation table.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("occupation table: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("occupation table: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
