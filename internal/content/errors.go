package content

import "fmt"

// LoadError represents an error reading or decoding a content file.
type LoadError struct {
	File  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error: %s: %v", e.File, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents content that decoded but is not usable.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
