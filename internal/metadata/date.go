package metadata

import (
	"strings"
	"time"
	"unicode"
)

// dateLayout is the only date format this export convention uses on the
// line after the word-count marker, e.g. "1 September 2025".
const dateLayout = "2 January 2006"

// NormalizeDate converts a "D Month YYYY" date to ISO YYYY-MM-DD.
// Month matching is case-insensitive. Anything else is returned verbatim:
// an unrecognized date is still worth keeping as-is rather than dropping.
func NormalizeDate(s string) string {
	trimmed := strings.TrimSpace(s)

	fields := strings.Fields(trimmed)
	if len(fields) != 3 {
		return s
	}

	// time.Parse wants the month capitalized exactly ("September").
	fields[1] = titleCase(fields[1])

	t, err := time.Parse(dateLayout, strings.Join(fields, " "))
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

// titleCase uppercases the first rune and lowercases the rest.
func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
