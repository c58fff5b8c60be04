// Package scrape - selectors.go centralizes the DOM selectors the scraper
// depends on, so a site layout change is fixed in one place.
package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LoginURL is the page that shows the login form, or redirects straight to
// the feed when the stored session is still authenticated.
const LoginURL = "https://www.linkedin.com/login"

const (
	// shellMarker is unique to the authenticated app shell. Its presence is
	// the proof that the browser is logged in.
	shellMarker = "input.search-global-typeahead__input"

	usernameField = "input#username"
	passwordField = "input#password"
	submitButton  = `button[data-litms-control-urn="login-submit"]`
)

// Matcher pairs a CSS selector with a short name used in logs when it hits.
type Matcher struct {
	Name     string
	Selector string
}

// CompanyMatchers returns the ordered selector alternatives for the employer
// name. The page renders different layouts depending on the route taken to
// it, so matchers are tried in order and the first hit wins. A new layout
// variant is supported by appending one entry.
func CompanyMatchers() []Matcher {
	return []Matcher{
		{Name: "unified top card", Selector: "div.job-details-jobs-unified-top-card__company-name a"},
		{Name: "top card org link", Selector: "a.topcard__org-name-link"},
		{Name: "app-aware link", Selector: `a.app-aware-link[data-test-app-aware-link]`},
	}
}

// ContentMatchers returns the ordered selector alternatives for the job
// description region. The same markers gate the pre-capture wait and the
// post-capture parse.
func ContentMatchers() []Matcher {
	return []Matcher{
		{Name: "job details pane", Selector: "div#job-details"},
		{Name: "public description", Selector: "div.description__text"},
	}
}

// firstMatch evaluates matchers in order against the document and returns
// the first selection with at least one node.
func firstMatch(doc *goquery.Document, matchers []Matcher) (*goquery.Selection, Matcher, bool) {
	for _, m := range matchers {
		if sel := doc.Find(m.Selector); sel.Length() > 0 {
			return sel.First(), m, true
		}
	}
	return nil, Matcher{}, false
}

// groupSelector combines matcher selectors into one comma-separated CSS
// group, so a single wait fires on whichever alternative renders first.
func groupSelector(matchers []Matcher) string {
	selectors := make([]string, len(matchers))
	for i, m := range matchers {
		selectors[i] = m.Selector
	}
	return strings.Join(selectors, ", ")
}
