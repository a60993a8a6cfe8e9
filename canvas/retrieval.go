package canvas

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ListDiscussionTopics walks every page of a course's discussion topics, following the Link
// header cursor until Canvas stops handing one out.
//
// A failing page ends the walk: the topics gathered so far are returned together with the error,
// so the caller can still work with a partial listing.  A 403 on a page just means there is
// nothing (more) for us to see, and is not reported as an error.
func (api *API) ListDiscussionTopics(ctx context.Context, query ListTopicsQuery) ([]DiscussionTopic, error) {
	topics := []DiscussionTopic{}

	ep, err := api.getTopicsEndpoint(query)
	if err != nil {
		return topics, fmt.Errorf("canvas: couldn't list topics: %w", err)
	}

	for page := 1; ep != nil; page++ {
		result, err := api.topicsPageWithTimeout(ctx, ep)
		if errors.Is(err, ErrForbidden) {
			return topics, nil
		}
		if err != nil {
			return topics, fmt.Errorf("canvas: couldn't fetch topics page %d of course %s: %w", page, query.CourseID, err)
		}

		topics = append(topics, result.Topics...)

		if result.Next == "" {
			break
		}
		ep, err = url.Parse(result.Next)
		if err != nil {
			return topics, fmt.Errorf("canvas: couldn't parse next-page link %q: %w", result.Next, err)
		}
	}

	return topics, nil
}

func (api *API) topicsPageWithTimeout(ctx context.Context, ep *url.URL) (*TopicPage, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	return api.getTopicsPage(ctx, ep)
}

// TopicViewText fetches a topic's threaded view and flattens it into one string.
func (api *API) TopicViewText(ctx context.Context, courseID string, topicID string) (string, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	view, err := api.GetTopicView(ctx, TopicViewQuery{
		CourseID: courseID,
		TopicID:  topicID,
	})
	if err != nil {
		return "", err
	}

	return view.Text(), nil
}

// CourseName looks up the display name of a course.  Courses without a name come back as
// "Unknown Course".
func (api *API) CourseName(ctx context.Context, courseID string) (string, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	course, err := api.GetCourse(ctx, GetCourseQuery{ID: courseID})
	if err != nil {
		return "", fmt.Errorf("canvas: couldn't look up course %s: %w", courseID, err)
	}

	if course.Name == "" {
		return "Unknown Course", nil
	}
	return course.Name, nil
}

func (api *API) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if api.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, api.Timeout)
}
