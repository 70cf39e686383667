// internal/ai/extract.go
package ai

import "errors"

// ErrNoJSONObject is returned when the reply contains no top-level object.
var ErrNoJSONObject = errors.New("no JSON object found in reply")

// FirstJSONObject returns the first balanced top-level {...} object in s.
// The scanner is string-aware: braces and escape sequences inside string
// literals do not affect the depth count.
func FirstJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSONObject
}
