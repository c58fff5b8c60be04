// Package scrape drives a real browser against login-gated job postings,
// reusing a persistent day-keyed session profile where possible and
// performing a fresh login when not.
package scrape

import (
	"errors"
	"fmt"
	"time"
)

// Wait stages reported by WaitError, naming which step of the flow was
// blocked when its DOM marker failed to appear.
const (
	StageLoginField        = "login field"
	StageLoginConfirmation = "login confirmation"
	StageContentWait       = "content wait"
)

// ErrMissingCredentials indicates an authenticated scrape was attempted
// without both an identifier and a secret configured.
var ErrMissingCredentials = errors.New("credentials not configured: email and password are both required")

// WaitError represents a DOM marker that never appeared within its bounded
// wait. The stage tells an operator whether login or content rendering broke;
// the usual causes are changed markup or bad credentials, not transient load,
// so these are never retried automatically.
type WaitError struct {
	Stage    string
	Selector string
	Timeout  time.Duration
	Cause    error
}

func (e *WaitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: selector %q did not appear within %s: %v", e.Stage, e.Selector, e.Timeout, e.Cause)
	}
	return fmt.Sprintf("%s: selector %q did not appear within %s", e.Stage, e.Selector, e.Timeout)
}

func (e *WaitError) Unwrap() error {
	return e.Cause
}

// NavigationError represents a page navigation that failed or timed out.
type NavigationError struct {
	URL   string
	Cause error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Cause)
}

func (e *NavigationError) Unwrap() error {
	return e.Cause
}

// ContentAbsentError indicates the job description region was missing or
// empty in the captured markup even though the pre-capture wait succeeded.
// Markup can shift between the wait and the read; when it does, the request
// is unrecoverable.
type ContentAbsentError struct {
	URL string
}

func (e *ContentAbsentError) Error() string {
	return fmt.Sprintf("job description region missing or empty in captured page for %s", e.URL)
}
