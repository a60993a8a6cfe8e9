package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toothbrush/canvas-link-finder/canvas"
)

func TestNextPage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "next before prev",
			header: `<https://x/y?page=2>; rel="next", <https://x/y?page=1>; rel="prev"`,
			want:   "https://x/y?page=2",
		},
		{
			name:   "next after others",
			header: `<https://x/y?page=1>; rel="current", <https://x/y?page=1>; rel="first", <https://x/y?page=3>; rel="next"`,
			want:   "https://x/y?page=3",
		},
		{
			name:   "first next wins",
			header: `<https://x/a>; rel="next", <https://x/b>; rel="next"`,
			want:   "https://x/a",
		},
		{
			name:   "unquoted rel",
			header: `<https://x/y?page=2>; rel=next`,
			want:   "https://x/y?page=2",
		},
		{
			name:   "multiple relation types",
			header: `<https://x/y?page=2>; rel="next last"`,
			want:   "https://x/y?page=2",
		},
		{
			name:   "empty",
			header: "",
			want:   "",
		},
		{
			name:   "whitespace only",
			header: "   ",
			want:   "",
		},
		{
			name:   "no next relation",
			header: `<https://x/y?page=1>; rel="prev", <https://x/y?page=1>; rel="first"`,
			want:   "",
		},
		{
			name:   "nextish relation is not next",
			header: `<https://x/y?page=9>; rel="next-archive"`,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canvas.NextPage(tt.header))
		})
	}
}
