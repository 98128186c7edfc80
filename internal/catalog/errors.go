package catalog

import "fmt"

// LoadError represents a failure to read, validate or decode a catalog.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load failed: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
