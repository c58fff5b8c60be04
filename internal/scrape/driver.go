// Package scrape - driver.go provides the browser abstraction the state
// machine runs against. Tests substitute a fake; production uses Chrome
// through chromedp bound to a persistent profile directory.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// PageDriver is the minimal browser surface the scrape flow needs. Every
// method is bounded: it either completes within the given timeout or returns
// an error, never hangs.
type PageDriver interface {
	Navigate(url string, timeout time.Duration) error
	WaitVisible(selector string, timeout time.Duration) error
	SendKeys(selector, value string, timeout time.Duration) error
	Click(selector string, timeout time.Duration) error
	HTML(timeout time.Duration) (string, error)
}

// DriverFactory launches a browser bound to a profile directory and returns
// a PageDriver plus a release function. The release function must always be
// called; it closes the browser process and unlocks the profile.
type DriverFactory func(ctx context.Context, profileDir string, headless bool) (PageDriver, func(), error)

type chromeDriver struct {
	ctx context.Context
}

// NewChromeDriver launches a Chrome instance using profileDir as its user
// data directory, so cookies and local storage persist across runs.
// Requires Chrome/Chromium to be installed on the system.
func NewChromeDriver(ctx context.Context, profileDir string, headless bool) (PageDriver, func(), error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.UserDataDir(profileDir),
			chromedp.Flag("headless", headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	release := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// Start the browser now so launch failures surface here rather than on
	// the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &chromeDriver{ctx: browserCtx}, release, nil
}

// run executes actions against the browser with a bounded deadline derived
// from the browser context, so caller cancellation still propagates.
func (d *chromeDriver) run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(d.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

func (d *chromeDriver) Navigate(url string, timeout time.Duration) error {
	return d.run(timeout, chromedp.Navigate(url))
}

func (d *chromeDriver) WaitVisible(selector string, timeout time.Duration) error {
	return d.run(timeout, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (d *chromeDriver) SendKeys(selector, value string, timeout time.Duration) error {
	return d.run(timeout, chromedp.SendKeys(selector, value, chromedp.ByQuery))
}

func (d *chromeDriver) Click(selector string, timeout time.Duration) error {
	return d.run(timeout, chromedp.Click(selector, chromedp.ByQuery))
}

func (d *chromeDriver) HTML(timeout time.Duration) (string, error) {
	var html string
	if err := d.run(timeout, chromedp.OuterHTML("html", &html)); err != nil {
		return "", err
	}
	return html, nil
}
