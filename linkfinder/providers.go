package linkfinder

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultHosts are Google's document-hosting hosts: Docs, Drive, Forms, the goo.gl shortener and
// the bare domain.
var DefaultHosts = []string{
	"docs.google.com",
	"drive.google.com",
	"forms.google.com",
	"goo.gl",
	"google.com",
}

// Providers is an immutable set of hostnames plus the matchers compiled from them.  Build one
// with NewProviders and share it freely.
type Providers struct {
	hosts []string

	// anywhere finds every occurrence inside running text.
	anywhere *regexp.Regexp
	// prefix only accepts strings that start with a provider URL.
	prefix *regexp.Regexp
}

// NewProviders compiles the URL pattern for hosts: http or https, one of the hosts, then anything
// up to the next whitespace.  Matching is case-insensitive.
func NewProviders(hosts ...string) (*Providers, error) {
	if len(hosts) == 0 {
		return nil, fmt.Errorf("linkfinder: at least one provider host is required")
	}

	quoted := make([]string, 0, len(hosts))
	kept := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			return nil, fmt.Errorf("linkfinder: empty provider host")
		}
		if strings.ContainsAny(h, "/: \t") {
			return nil, fmt.Errorf("linkfinder: provider host %q must be a bare hostname", h)
		}
		kept = append(kept, h)
		quoted = append(quoted, regexp.QuoteMeta(h))
	}

	// \p{Z} covers the non-breaking spaces rich-text editors like to leave behind.
	pattern := `(?i)https?://(?:` + strings.Join(quoted, "|") + `)[^\s\p{Z}]*`

	anywhere, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("linkfinder: couldn't compile provider pattern: %w", err)
	}

	return &Providers{
		hosts:    kept,
		anywhere: anywhere,
		prefix:   regexp.MustCompile(`^` + pattern),
	}, nil
}

// MustProviders is NewProviders for hosts known at compile time.
func MustProviders(hosts ...string) *Providers {
	p, err := NewProviders(hosts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Hosts returns a copy of the configured hostnames.
func (p *Providers) Hosts() []string {
	return append([]string(nil), p.hosts...)
}

// Matches reports whether s begins with a provider URL.
func (p *Providers) Matches(s string) bool {
	return p.prefix.MatchString(s)
}

// FindAll returns every non-overlapping provider URL in text, in order of appearance.
func (p *Providers) FindAll(text string) []string {
	return p.anywhere.FindAllString(text, -1)
}
