package linkfinder

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/exp/maps"
)

// Extractor finds provider links in HTML or plain text.  It holds no mutable state; one
// Extractor may be used for any number of documents.
type Extractor struct {
	Providers *Providers
}

// NewExtractor builds an Extractor for hosts, falling back to DefaultHosts when none are given.
func NewExtractor(hosts ...string) (*Extractor, error) {
	if len(hosts) == 0 {
		hosts = DefaultHosts
	}
	p, err := NewProviders(hosts...)
	if err != nil {
		return nil, err
	}
	return &Extractor{Providers: p}, nil
}

// Extract returns the distinct provider links in text, sorted.
//
// Links are collected in two passes.  First every <a href> is inspected: the href is kept if it is
// a provider URL, and the anchor's visible text is kept as well when it is itself a provider URL
// that differs from the href.  Then the rendered text of the whole document is scanned for bare
// provider URLs.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	found := map[string]struct{}{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// nothing structured to look at; scan the input as-is.
		e.scanText(text, found)
		return sortedLinks(found)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		e.anchorLinks(strings.TrimSpace(href), strings.TrimSpace(a.Text()), found)
	})

	e.scanText(doc.Text(), found)

	return sortedLinks(found)
}

func (e *Extractor) anchorLinks(href string, visible string, found map[string]struct{}) {
	hrefMatches := e.Providers.Matches(href)

	// <a href="url">url</a> only counts once.
	if hrefMatches && visible == href {
		found[href] = struct{}{}
		return
	}

	if hrefMatches {
		found[href] = struct{}{}
	}
	if visible != href && e.Providers.Matches(visible) {
		found[visible] = struct{}{}
	}
}

func (e *Extractor) scanText(text string, found map[string]struct{}) {
	for _, link := range e.Providers.FindAll(text) {
		found[link] = struct{}{}
	}
}

func sortedLinks(found map[string]struct{}) []string {
	links := maps.Keys(found)
	sort.Strings(links)
	return links
}
