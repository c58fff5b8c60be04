// Package scrape - scraper.go implements the login and capture flow as an
// explicit state machine: one handler per phase, each returning the next
// phase or an error, with a bounded wait at every step.
package scrape

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/thechessguy13/resume-tailor-agent/internal/session"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// Credentials carries the login identity for the gated site. The password is
// never logged; diagnostics may disclose its length only.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Validate validates the Credentials using the validator.
func (c *Credentials) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Timeouts bounds each wait step of the scrape flow.
type Timeouts struct {
	Navigate time.Duration // page navigations
	Probe    time.Duration // logged-in probe on the login page
	Field    time.Duration // login form fields appearing
	Confirm  time.Duration // authenticated shell appearing after submit
	Content  time.Duration // job description region rendering
}

// DefaultTimeouts returns the wait bounds tuned against the live site. The
// probe is short because a valid session redirects quickly; the confirmation
// and content waits are generous because both sit behind heavy client-side
// rendering.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Navigate: 60 * time.Second,
		Probe:    10 * time.Second,
		Field:    30 * time.Second,
		Confirm:  60 * time.Second,
		Content:  60 * time.Second,
	}
}

// Config configures the Scraper.
type Config struct {
	Credentials Credentials
	Sessions    *session.Store
	Headless    bool
	Timeouts    Timeouts
	NewDriver   DriverFactory // nil means launch real Chrome
}

// Scraper captures login-gated job postings. A single Scraper serializes its
// scrapes with a mutex: the day's profile directory is a locked resource and
// cannot back two live browsers at once, so concurrent callers queue.
type Scraper struct {
	cfg Config
	mu  sync.Mutex
}

// New creates a Scraper. Zero timeouts fall back to defaults, a nil session
// store falls back to the default base directory, and a nil driver factory
// falls back to the real browser.
func New(cfg Config) *Scraper {
	def := DefaultTimeouts()
	if cfg.Timeouts.Navigate == 0 {
		cfg.Timeouts.Navigate = def.Navigate
	}
	if cfg.Timeouts.Probe == 0 {
		cfg.Timeouts.Probe = def.Probe
	}
	if cfg.Timeouts.Field == 0 {
		cfg.Timeouts.Field = def.Field
	}
	if cfg.Timeouts.Confirm == 0 {
		cfg.Timeouts.Confirm = def.Confirm
	}
	if cfg.Timeouts.Content == 0 {
		cfg.Timeouts.Content = def.Content
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.New("")
	}
	if cfg.NewDriver == nil {
		cfg.NewDriver = NewChromeDriver
	}
	return &Scraper{cfg: cfg}
}

// Scrape logs in if the stored session has expired, captures the posting at
// jobURL once its description region has rendered, and parses the captured
// markup. The browser is closed before parsing begins, on every exit path.
func (s *Scraper) Scrape(ctx context.Context, jobURL string) (*types.ScrapedContent, error) {
	if err := s.cfg.Credentials.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}
	log.Debug().
		Str("email", s.cfg.Credentials.Email).
		Int("password_length", len(s.cfg.Credentials.Password)).
		Msg("credentials loaded")

	s.mu.Lock()
	defer s.mu.Unlock()

	html, err := s.capture(ctx, jobURL)
	if err != nil {
		return nil, err
	}
	return ParseJobPage(html, jobURL)
}

// capture owns the browser lifetime: acquire today's session directory,
// launch, drive the phases, and release the browser before returning.
func (s *Scraper) capture(ctx context.Context, jobURL string) (string, error) {
	profileDir, err := s.cfg.Sessions.PathForToday()
	if err != nil {
		return "", err
	}
	s.cfg.Sessions.PurgeStale()

	page, release, err := s.cfg.NewDriver(ctx, profileDir, s.cfg.Headless)
	if err != nil {
		return "", fmt.Errorf("failed to launch browser: %w", err)
	}
	defer release()

	r := &run{cfg: s.cfg, page: page, jobURL: jobURL}
	for current := phaseCheckLogin; current != phaseDone; {
		next, err := r.step(current)
		if err != nil {
			return "", err
		}
		current = next
	}
	return r.html, nil
}

// phase enumerates the states of the scrape flow.
type phase int

const (
	phaseCheckLogin phase = iota
	phaseLogin
	phaseExtract
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseCheckLogin:
		return "check-login"
	case phaseLogin:
		return "login"
	case phaseExtract:
		return "extract"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// run holds the mutable state of one scrape flow.
type run struct {
	cfg    Config
	page   PageDriver
	jobURL string
	html   string
}

func (r *run) step(current phase) (phase, error) {
	log.Debug().Stringer("phase", current).Msg("entering scrape phase")
	switch current {
	case phaseCheckLogin:
		return r.checkLogin()
	case phaseLogin:
		return r.login()
	case phaseExtract:
		return r.extract()
	default:
		return phaseDone, fmt.Errorf("unexpected scrape phase %q", current)
	}
}

// checkLogin probes the login page for the authenticated app shell. A hit
// means the stored session is still valid and login can be skipped; a miss
// is routine, not an error.
func (r *run) checkLogin() (phase, error) {
	if err := r.page.Navigate(LoginURL, r.cfg.Timeouts.Navigate); err != nil {
		return 0, &NavigationError{URL: LoginURL, Cause: err}
	}
	if err := r.page.WaitVisible(shellMarker, r.cfg.Timeouts.Probe); err != nil {
		log.Info().Msg("stored session is not logged in, performing login")
		return phaseLogin, nil
	}
	log.Info().Msg("stored session still valid, skipping login")
	return phaseExtract, nil
}

// login fills and submits the login form, then waits for the authenticated
// shell as proof of success. A field or confirmation timeout is fatal: it
// means the markup changed or the credentials are wrong.
func (r *run) login() (phase, error) {
	if err := r.page.Navigate(LoginURL, r.cfg.Timeouts.Navigate); err != nil {
		return 0, &NavigationError{URL: LoginURL, Cause: err}
	}

	if err := r.page.WaitVisible(usernameField, r.cfg.Timeouts.Field); err != nil {
		return 0, &WaitError{Stage: StageLoginField, Selector: usernameField, Timeout: r.cfg.Timeouts.Field, Cause: err}
	}
	if err := r.page.SendKeys(usernameField, r.cfg.Credentials.Email, r.cfg.Timeouts.Field); err != nil {
		return 0, fmt.Errorf("failed to fill email field: %w", err)
	}

	if err := r.page.WaitVisible(passwordField, r.cfg.Timeouts.Field); err != nil {
		return 0, &WaitError{Stage: StageLoginField, Selector: passwordField, Timeout: r.cfg.Timeouts.Field, Cause: err}
	}
	if err := r.page.SendKeys(passwordField, r.cfg.Credentials.Password, r.cfg.Timeouts.Field); err != nil {
		return 0, fmt.Errorf("failed to fill password field: %w", err)
	}

	if err := r.page.Click(submitButton, r.cfg.Timeouts.Field); err != nil {
		return 0, fmt.Errorf("failed to submit login form: %w", err)
	}

	if err := r.page.WaitVisible(shellMarker, r.cfg.Timeouts.Confirm); err != nil {
		return 0, &WaitError{Stage: StageLoginConfirmation, Selector: shellMarker, Timeout: r.cfg.Timeouts.Confirm, Cause: err}
	}
	log.Info().Msg("login successful")
	return phaseExtract, nil
}

// extract navigates to the posting and captures its full rendered markup
// once either description marker is visible.
func (r *run) extract() (phase, error) {
	if err := r.page.Navigate(r.jobURL, r.cfg.Timeouts.Navigate); err != nil {
		return 0, &NavigationError{URL: r.jobURL, Cause: err}
	}

	marker := groupSelector(ContentMatchers())
	if err := r.page.WaitVisible(marker, r.cfg.Timeouts.Content); err != nil {
		return 0, &WaitError{Stage: StageContentWait, Selector: marker, Timeout: r.cfg.Timeouts.Content, Cause: err}
	}

	html, err := r.page.HTML(r.cfg.Timeouts.Navigate)
	if err != nil {
		return 0, fmt.Errorf("failed to capture page markup: %w", err)
	}
	r.html = html
	return phaseDone, nil
}
