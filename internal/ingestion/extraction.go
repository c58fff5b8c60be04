// Package ingestion turns caller-supplied job sources into normalized job
// description content. It owns strategy selection: literal text passes
// through, files are parsed locally, and URLs are routed between the
// unauthenticated fast path and the authenticated browser flow.
package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thechessguy13/resume-tailor-agent/internal/fetch"
	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

// SourceKind identifies how a job description is supplied.
type SourceKind string

const (
	// SourceText is a literal job description pasted by the user.
	SourceText SourceKind = "text"
	// SourceURL is a job posting URL, gated or not.
	SourceURL SourceKind = "url"
	// SourceFile is a path to a local PDF of the posting.
	SourceFile SourceKind = "file"
)

// Source describes one extraction request.
type Source struct {
	Kind  SourceKind
	Value string
}

// ErrUnknownSourceKind is returned for a Source whose kind is not one of the
// enumerated variants. No I/O happens in that case.
var ErrUnknownSourceKind = errors.New(`invalid source kind: choose from "text", "url", or "file"`)

// Fetcher is the unauthenticated fast path for job page text.
type Fetcher interface {
	BodyText(ctx context.Context, url string) (string, error)
}

// Scraper drives the authenticated browser flow for gated or
// JavaScript-rendered pages.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*types.ScrapedContent, error)
}

// HTTPFetcher adapts the fetch package to the Fetcher interface.
type HTTPFetcher struct {
	Options *fetch.Options
}

// BodyText fetches the URL and returns its collapsed body text.
func (f *HTTPFetcher) BodyText(ctx context.Context, url string) (string, error) {
	return fetch.BodyText(ctx, url, f.Options)
}

// Orchestrator dispatches extraction by source kind and normalizes every
// outcome into a ScrapedContent.
type Orchestrator struct {
	fetcher Fetcher
	scraper Scraper
}

// NewOrchestrator creates an Orchestrator over the two URL strategies.
func NewOrchestrator(fetcher Fetcher, scraper Scraper) *Orchestrator {
	return &Orchestrator{fetcher: fetcher, scraper: scraper}
}

// Extract resolves a source into scraped content. Literal text is passed
// through byte-for-byte; files and URLs are normalized to collapsed
// whitespace by their extractors.
func (o *Orchestrator) Extract(ctx context.Context, src Source) (*types.ScrapedContent, error) {
	log.Info().Str("kind", string(src.Kind)).Msg("processing job description source")

	switch src.Kind {
	case SourceText:
		return &types.ScrapedContent{CompanyName: types.UnknownCompany, BodyText: src.Value}, nil
	case SourceURL:
		return o.extractFromURL(ctx, src.Value)
	case SourceFile:
		text, err := DocumentText(src.Value)
		if err != nil {
			return nil, err
		}
		return &types.ScrapedContent{CompanyName: types.UnknownCompany, BodyText: text}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSourceKind, src.Kind)
	}
}

// extractFromURL tries the fast path for non-gated hosts; any fast-path
// failure is expected and recoverable, so it falls through to the
// authenticated scraper without propagating. Gated hosts skip the fast path
// entirely.
func (o *Orchestrator) extractFromURL(ctx context.Context, url string) (*types.ScrapedContent, error) {
	platform := fetch.DetectPlatform(url)
	if !platform.Gated() {
		log.Info().Str("platform", string(platform)).Msg("non-gated URL, trying simple fetch")
		text, err := o.fetcher.BodyText(ctx, url)
		if err == nil {
			return &types.ScrapedContent{CompanyName: types.UnknownCompany, BodyText: text}, nil
		}
		log.Warn().Err(err).Str("url", url).Msg("simple fetch failed, falling back to authenticated scraper")
	} else {
		log.Info().Str("platform", string(platform)).Msg("gated URL, using authenticated scraper")
	}
	return o.scraper.Scrape(ctx, url)
}
