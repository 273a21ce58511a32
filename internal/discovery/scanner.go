package discovery

import (
	"fmt"
	"os"
	"sort"

	"pit/internal/domain"
)

// Scanner finds test-case fixtures in the cases directory
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns one TestCase per fixture carrying the layout extension,
// sorted by name. An empty directory yields an empty slice.
func (s *Scanner) Scan(layout domain.Layout) ([]domain.TestCase, error) {
	dir := layout.CasesPath()

	info, err := os.Stat(dir)
	if err != nil {
		return nil, domain.NewDiscoveryError(dir, err)
	}
	if !info.IsDir() {
		return nil, domain.NewDiscoveryError(dir, fmt.Errorf("not a directory"))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.NewDiscoveryError(dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := layout.CaseName(entry.Name())
		if !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	cases := make([]domain.TestCase, 0, len(names))
	for _, name := range names {
		cases = append(cases, layout.NewTestCase(name))
	}
	return cases, nil
}
