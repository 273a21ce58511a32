package discovery

import (
	"path/filepath"
	"strings"

	"pit/internal/domain"
)

// Filter narrows discovered cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the cases whose name matches pattern.
// Supports shell wildcards like "fib*" or "*loop*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matchName(tc.Name, pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?[") {
		return strings.Contains(name, pattern)
	}

	// Loose fallback: the literal parts only need to appear in order,
	// so "*fib" also selects "fib_rec".
	if !strings.Contains(pattern, "*") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
