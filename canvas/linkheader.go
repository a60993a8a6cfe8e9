package canvas

import "strings"

// NextPage returns the URL of the rel="next" entry in an RFC 8288 style Link header, as Canvas
// sends for paginated collections:
//
//	<https://x/api/v1/...&page=2>; rel="next", <https://x/api/v1/...&page=1>; rel="first"
//
// The first matching entry wins.  An empty header, or one without a next relation, gives "".
func NextPage(linkHeader string) string {
	if strings.TrimSpace(linkHeader) == "" {
		return ""
	}

	for _, entry := range strings.Split(linkHeader, ",") {
		parts := strings.Split(entry, ";")
		target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
		if target == "" {
			continue
		}

		for _, param := range parts[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
				continue
			}
			// rel may hold several space-separated relation types.
			for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(value), `"`)) {
				if strings.EqualFold(rel, "next") {
					return target
				}
			}
		}
	}

	return ""
}
