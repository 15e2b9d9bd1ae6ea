package instrument

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// truncate cuts s to at most limit bytes, backing off to a rune boundary so
// a multi-byte character is never split mid-sequence.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + " ..."
}

// summarize renders a value within the byte budget. It must never fail:
// values that cannot be rendered become Placeholder, and oversized
// renderings are truncated. limit <= 0 disables truncation.
func summarize(v any, limit int) (s string) {
	defer func() {
		if recover() != nil {
			s = Placeholder
		}
	}()

	return truncate(fmt.Sprintf("%v", v), limit)
}

// summarizeArgs renders a call's arguments as a comma-separated list, then
// applies the budget to the whole list.
func summarizeArgs(args []any, limit int) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = summarize(a, limit)
	}
	return truncate(strings.Join(parts, ", "), limit)
}

// formatDuration renders an elapsed time in seconds, switching to minutes
// past one minute.
func formatDuration(d time.Duration) string {
	if d > time.Minute {
		return fmt.Sprintf("%0.3f minutes", d.Minutes())
	}
	return fmt.Sprintf("%0.3f seconds", d.Seconds())
}

// indentation prefixes a message for its nesting depth, two spaces a level.
func indentation(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}
