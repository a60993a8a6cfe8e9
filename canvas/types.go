package canvas

import (
	"strconv"
	"strings"
)

// See https://canvas.instructure.com/doc/api/courses.html#Course
type Course struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code,omitempty"`
	State      string `json:"workflow_state,omitempty"`
}

// See https://canvas.instructure.com/doc/api/discussion_topics.html#DiscussionTopic.  Only the
// fields we scan or report on are decoded.
type DiscussionTopic struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
	// Message is the topic body as HTML, as written by the topic's author.
	Message  string `json:"message,omitempty"`
	HTMLURL  string `json:"html_url,omitempty"`
	PostedAt string `json:"posted_at,omitempty"`

	// Only present when the topic is an announcement; we never ask for those.
	IsAnnouncement bool `json:"is_announcement,omitempty"`
}

// IDString renders the topic ID the way endpoints expect it.
func (t DiscussionTopic) IDString() string {
	return strconv.FormatInt(t.ID, 10)
}

// TopicView is the "full topic" response:
// https://canvas.instructure.com/doc/api/discussion_topics.html#method.discussion_topics_api.view
type TopicView struct {
	View []ViewEntry `json:"view"`
}

// ViewEntry is one message in a threaded discussion.  Replies have the same shape.
type ViewEntry struct {
	ID      int64       `json:"id,omitempty"`
	UserID  int64       `json:"user_id,omitempty"`
	Message string      `json:"message"`
	Deleted bool        `json:"deleted,omitempty"`
	Replies []ViewEntry `json:"replies,omitempty"`
}

// Text flattens the whole thread into one string: every message is followed immediately by its
// replies, in the order Canvas returned them, separated by single spaces.
func (v TopicView) Text() string {
	messages := []string{}
	for _, entry := range v.View {
		messages = entry.appendMessages(messages)
	}
	return strings.Join(messages, " ")
}

func (e ViewEntry) appendMessages(messages []string) []string {
	messages = append(messages, e.Message)
	for _, reply := range e.Replies {
		messages = reply.appendMessages(messages)
	}
	return messages
}
