package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var (
	// ErrForbidden is returned for 403 responses.  Canvas answers 403 for content the token's
	// user may not see (e.g. a locked topic), which callers generally treat as "no content".
	ErrForbidden = errors.New("canvas: permission denied")

	// ErrUnauthorized is returned for 401 responses: the token is missing, expired or revoked.
	ErrUnauthorized = errors.New("canvas: authentication failed")
)

// StatusError is returned for any other non-success status code.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("canvas: unexpected HTTP response status: %s: %s", e.Status, e.URL)
}

// GetCourse fetches one course, mostly for its name.
func (api *API) GetCourse(ctx context.Context, opts GetCourseQuery) (*Course, error) {
	ep, err := api.getCourseEndpoint(opts)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't get course endpoint: %w", err)
	}

	body, _, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't perform request: %w", err)
	}

	var course Course

	if err := json.Unmarshal(body, &course); err != nil {
		return nil, fmt.Errorf("canvas: couldn't parse json response: %w", err)
	}

	return &course, nil
}

// GetTopicView fetches the threaded view of one discussion topic.
func (api *API) GetTopicView(ctx context.Context, opts TopicViewQuery) (*TopicView, error) {
	ep, err := api.getTopicViewEndpoint(opts)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't get topic view endpoint: %w", err)
	}

	body, _, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't perform request: %w", err)
	}

	var view TopicView

	if err := json.Unmarshal(body, &view); err != nil {
		return nil, fmt.Errorf("canvas: couldn't parse json response: %w", err)
	}

	return &view, nil
}

// TopicPage is one page of a discussion topic listing, plus the cursor to the next one ("" on the
// last page).
type TopicPage struct {
	Topics []DiscussionTopic
	Next   string
}

// getTopicsPage fetches one page of topics.  ep is either the first-page endpoint or a cursor URL
// taken verbatim from a previous page's Link header.
func (api *API) getTopicsPage(ctx context.Context, ep *url.URL) (*TopicPage, error) {
	body, header, err := api.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't perform request: %w", err)
	}

	var topics []DiscussionTopic

	if err := json.Unmarshal(body, &topics); err != nil {
		return nil, fmt.Errorf("canvas: couldn't parse json response: %w", err)
	}

	return &TopicPage{
		Topics: topics,
		Next:   NextPage(header.Get("Link")),
	}, nil
}

// Request implements the basic Request function
func (api *API) request(ctx context.Context, url *url.URL) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("canvas: couldn't instantiate http request: %w", err)
	}

	req.Header.Add("Accept", "application/json, */*")
	if api.token != "" {
		req.Header.Set("Authorization", "Bearer "+api.token)
	}

	response, err := api.Client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("canvas: couldn't perform http request: %w", err)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		response.Body.Close()
		return nil, nil, fmt.Errorf("canvas: couldn't read http response body: %w", err)
	}

	if err := response.Body.Close(); err != nil {
		return nil, nil, fmt.Errorf("canvas: couldn't close response body: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK:
		return body, response.Header, nil
	case http.StatusForbidden:
		return nil, nil, ErrForbidden
	case http.StatusUnauthorized:
		return nil, nil, ErrUnauthorized
	}

	return nil, nil, &StatusError{
		StatusCode: response.StatusCode,
		Status:     response.Status,
		URL:        url.String(),
	}
}
