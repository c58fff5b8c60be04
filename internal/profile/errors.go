package profile

import (
	"errors"
	"fmt"
)

// Resume discovery failures callers branch on to print guidance.
var (
	// ErrNoResumePDF means the source directory holds no PDF to draft from.
	ErrNoResumePDF = errors.New("no PDF resume found in the source directory")
	// ErrMultipleResumePDFs means the source directory is ambiguous.
	ErrMultipleResumePDFs = errors.New("multiple PDF files found in the source directory")
)

// LoadError represents an error during file I/O, JSON parsing, or validation
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// APICallError represents an error from the LLM API
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error decoding or validating the API response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
