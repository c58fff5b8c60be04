// Package scrape - parse.go turns captured job page markup into structured
// content. Parsing is separate from the browser flow so it can run after the
// browser is closed and be tested against static fixtures.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/thechessguy13/resume-tailor-agent/internal/fetch"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// ParseJobPage extracts the employer name and description text from captured
// job page markup. The company name degrades to types.UnknownCompany when no
// selector alternative matches; a missing or empty description region fails
// the extraction.
func ParseJobPage(html, pageURL string) (*types.ScrapedContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse captured markup: %w", err)
	}

	company := types.UnknownCompany
	if sel, matcher, ok := firstMatch(doc, CompanyMatchers()); ok {
		if name := fetch.CollapseWhitespace(sel.Text()); name != "" {
			company = name
			log.Debug().Str("matcher", matcher.Name).Str("company", company).Msg("company name resolved")
		}
	}
	if company == types.UnknownCompany {
		log.Warn().Str("url", pageURL).Msg("could not resolve company name, using placeholder")
	}

	region, _, ok := firstMatch(doc, ContentMatchers())
	if !ok {
		return nil, &ContentAbsentError{URL: pageURL}
	}
	body := fetch.CollapseWhitespace(region.Text())
	if body == "" {
		return nil, &ContentAbsentError{URL: pageURL}
	}

	return &types.ScrapedContent{CompanyName: company, BodyText: body}, nil
}
