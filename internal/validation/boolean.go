package validation

import "strings"

// truthyTokens are the accepted spellings of an enabled flag, compared lower-case.
var truthyTokens = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
}

// ParseBooleanLike leniently coerces a config-style value to a bool. Only text equal
// (case-insensitively, ignoring surrounding whitespace) to "true", "1" or "yes" is
// true; anything else, including non-text values, is false. It never fails.
func ParseBooleanLike(value any) bool {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return false
	}
	return truthyTokens[strings.ToLower(strings.TrimSpace(s))]
}
