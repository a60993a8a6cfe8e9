package localdump

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// canonicalise turns a title into a file-name friendly slug.  Titles that reduce to less than two
// characters (e.g. all punctuation, or non-Latin script) return "".
func canonicalise(title string) string {
	str := nonAlnum.ReplaceAllString(title, " ")
	str = strings.ToLower(str)
	str = strings.Join(strings.Fields(str), "-")

	if len(str) > 100 {
		str = str[:100]
	}

	str = strings.Trim(str, "-")

	if len(str) < 2 {
		return ""
	}

	return str
}
