package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pit/internal/domain"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	layout := newLayout("/work")

	cases := []domain.TestCase{
		layout.NewTestCase("fib"),
		layout.NewTestCase("fib_rec"),
		layout.NewTestCase("hello"),
		layout.NewTestCase("for_each_in"),
		layout.NewTestCase("while"),
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "empty pattern returns all", pattern: "", want: []string{"fib", "fib_rec", "hello", "for_each_in", "while"}},
		{name: "prefix wildcard", pattern: "fib*", want: []string{"fib", "fib_rec"}},
		{name: "exact name", pattern: "hello", want: []string{"hello"}},
		{name: "substring without wildcards", pattern: "each", want: []string{"for_each_in"}},
		{name: "multiple wildcards", pattern: "*for*in*", want: []string{"for_each_in"}},
		{name: "loose suffix wildcard", pattern: "*fib", want: []string{"fib", "fib_rec"}},
		{name: "single character wildcard", pattern: "whil?", want: []string{"while"}},
		{name: "no matches", pattern: "*missing*", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(cases, tt.pattern)
			if tt.want == nil {
				assert.Empty(t, result)
				return
			}
			assert.Equal(t, tt.want, caseNames(result))
		})
	}
}

func TestFilter_FilterByName_EmptyList(t *testing.T) {
	result := NewFilter().FilterByName(nil, "fib*")
	assert.Empty(t, result)
}
