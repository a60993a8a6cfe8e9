package linkfinder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/toothbrush/canvas-link-finder/canvas"
)

// DiscussionSource walks a course's discussion topics.
type DiscussionSource struct {
	API     *canvas.API
	PerPage int
}

func (d *DiscussionSource) Label() string {
	return "Discussions"
}

// ListItems lists the published topics.  The topics' own messages make up the aggregate text,
// joined with single spaces in listing order.
func (d *DiscussionSource) ListItems(ctx context.Context, courseID string) (Batch, error) {
	topics, listErr := d.API.ListDiscussionTopics(ctx, canvas.ListTopicsQuery{
		CourseID: courseID,
		PerPage:  d.PerPage,
	})

	batch := Batch{Items: []ItemRef{}}
	messages := []string{}
	for _, topic := range topics {
		if !topic.Published {
			continue
		}
		batch.Items = append(batch.Items, ItemRef{
			ID:    topic.IDString(),
			Title: topic.Title,
		})
		if topic.Message != "" {
			messages = append(messages, topic.Message)
		}
	}

	if len(messages) > 0 {
		batch.Aggregate = strings.Join(messages, " ")
		batch.HasAggregate = true
	}

	if listErr != nil {
		return batch, fmt.Errorf("linkfinder: discussion listing incomplete: %w", listErr)
	}
	return batch, nil
}

// FetchDetail returns the flattened thread of one topic.  Topics we're not allowed to view are
// empty.
func (d *DiscussionSource) FetchDetail(ctx context.Context, courseID string, topicID string) (string, error) {
	text, err := d.API.TopicViewText(ctx, courseID, topicID)
	if errors.Is(err, canvas.ErrForbidden) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("linkfinder: couldn't fetch discussion topic %s: %w", topicID, err)
	}
	return text, nil
}
