package strutil

import "strings"

// HasToken reports whether the comma-separated list contains exactly the given
// token. Whitespace around list items is ignored, the comparison itself is
// exact and case-sensitive.
func HasToken(list, token string) bool {
	for len(list) > 0 {
		var item string
		item, list, _ = strings.Cut(list, ",")
		if strings.TrimSpace(item) == token {
			return true
		}
	}

	return false
}
