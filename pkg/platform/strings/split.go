// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// SplitList splits a separated list such as a query parameter, trimming each
// entry and dropping blanks and repeats. Order is preserved. It returns nil
// when no entry survives.
//
// Example:
//
//	SplitList(" 014,020,,014 ", ",")
//	// Returns: []string{"014", "020"}
func SplitList(raw, sep string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return DedupeAndTrim(strings.Split(raw, sep))
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved; nil is
// returned when nothing is left.
func DedupeAndTrim(values []string) []string {
	var result []string
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
