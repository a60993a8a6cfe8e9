package canvas

// ListTopicsQuery defines the query parameters for:
// https://canvas.instructure.com/doc/api/discussion_topics.html#method.discussion_topics.index
type ListTopicsQuery struct {
	CourseID string `url:"-"` // ID of the course; required

	OrderBy           string   `url:"order_by,omitempty"`           // position, recent_activity, title
	Scope             string   `url:"scope,omitempty"`              // locked, unlocked, pinned, unpinned
	SearchTerm        string   `url:"search_term,omitempty"`        // partial title or author match
	Include           []string `url:"include[],omitempty"`          // all_dates, sections, sections_user_count, overrides
	ExcludeLocked     bool     `url:"exclude_context_module_locked_topics,omitempty"`

	// Canvas paginates with a 'Link' response header.  The 'next' URL already carries every
	// parameter, so this only matters for the first request.
	PerPage int `url:"per_page,omitempty"` // page size; Canvas default 10, maximum 100
}

// TopicViewQuery defines the query parameters for:
// https://canvas.instructure.com/doc/api/discussion_topics.html#method.discussion_topics_api.view
type TopicViewQuery struct {
	CourseID string `url:"-"` // required
	TopicID  string `url:"-"` // required

	IncludeNewEntries bool `url:"include_new_entries,omitempty"`
	IncludeEnrollment bool `url:"include_enrollment_state,omitempty"`
}

// GetCourseQuery defines the query parameters for:
// https://canvas.instructure.com/doc/api/courses.html#method.courses.show
type GetCourseQuery struct {
	ID      string   `url:"-"` // ID of the course; required
	Include []string `url:"include[],omitempty"`
}
