package canvas

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every request made through the API client.
const DefaultTimeout = 30 * time.Second

func NewAPI(serverURL string, token string) (*API, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("canvas: configure your Canvas server with --server-url")
	}
	if token == "" {
		return nil, fmt.Errorf("canvas: auth token is empty, please check auth-token-cmd or your credentials")
	}

	// Canvas installs frequently come with a trailing slash; we resolve endpoints as absolute
	// paths, so normalise to the bare origin (plus any path prefix).
	u, err := url.ParseRequestURI(strings.TrimRight(serverURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't parse server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("canvas: server URL must be http(s), got %q", serverURL)
	}

	a := &API{
		BaseURI: u,
		Timeout: DefaultTimeout,
		token:   token,
	}
	a.Client = &http.Client{Timeout: DefaultTimeout}

	return a, nil
}

type API struct {
	// Base of the Canvas install, e.g. https://canvas.upenn.edu
	BaseURI *url.URL

	// An HTTP client - you can substitute VCR or whatnot.
	Client *http.Client

	// Per-request deadline, applied on top of whatever the Client enforces.
	Timeout time.Duration

	// Auth info
	token string
}

// CourseURL returns the browser-facing address of a course, as shown in reports.
func (a *API) CourseURL(courseID string) string {
	return fmt.Sprintf("%s/courses/%s", a.BaseURI.String(), courseID)
}
