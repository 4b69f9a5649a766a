package tagline

import "strings"

// Split breaks a tagline into trimmed, non-empty segments on commas
// that are not inside parentheses.
func Split(tagline string) []string {
	var (
		segments []string
		depth    int
		start    int
	)

	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}

	for i, r := range tagline {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				emit(tagline[start:i])
				start = i + 1
			}
		}
	}
	emit(tagline[start:])

	return segments
}
