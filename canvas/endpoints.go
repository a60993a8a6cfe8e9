package canvas

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// getCourseEndpoint returns the API endpoint to fetch one course:
// https://canvas.instructure.com/doc/api/courses.html#method.courses.show
func (a *API) getCourseEndpoint(opts GetCourseQuery) (*url.URL, error) {
	if opts.ID == "" {
		return nil, fmt.Errorf("canvas: please provide ID to get course")
	}

	ep, err := a.resolveEndpoint(fmt.Sprintf("api/v1/courses/%s", url.PathEscape(opts.ID)))
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// getTopicsEndpoint returns the API endpoint for the first page of a course's discussion topics:
// https://canvas.instructure.com/doc/api/discussion_topics.html#method.discussion_topics.index
func (a *API) getTopicsEndpoint(opts ListTopicsQuery) (*url.URL, error) {
	if opts.CourseID == "" {
		return nil, fmt.Errorf("canvas: please provide course ID to list topics")
	}

	ep, err := a.resolveEndpoint(fmt.Sprintf("api/v1/courses/%s/discussion_topics", url.PathEscape(opts.CourseID)))
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// getTopicViewEndpoint returns the API endpoint for the full (threaded) view of a topic:
// https://canvas.instructure.com/doc/api/discussion_topics.html#method.discussion_topics_api.view
func (a *API) getTopicViewEndpoint(opts TopicViewQuery) (*url.URL, error) {
	if opts.CourseID == "" || opts.TopicID == "" {
		return nil, fmt.Errorf("canvas: please provide course and topic ID to view topic")
	}

	ep, err := a.resolveEndpoint(fmt.Sprintf("api/v1/courses/%s/discussion_topics/%s/view",
		url.PathEscape(opts.CourseID),
		url.PathEscape(opts.TopicID)))
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("canvas: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// Do a bit of error checking on endpoint format, and return it relative to the base URI.  The
// endpoint is relative so that installs living under a path prefix keep it.
func (a *API) resolveEndpoint(endpoint string) (*url.URL, error) {
	base := *a.BaseURI
	base.Path = base.Path + "/"

	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to parse endpoint ref: %w", err)
	}

	return base.ResolveReference(ref), nil
}
