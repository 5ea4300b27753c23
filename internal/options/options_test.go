package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-kvs/internal/options"
)

func TestApply(t *testing.T) {
	t.Parallel()

	type config struct {
		limit  int
		prefix string
		strict bool
	}

	tests := []struct {
		name     string
		defaults options.Defaults[config]
		cbs      []options.Callback[config]
		expected config
	}{
		{
			name:     "nil defaults and no callbacks",
			defaults: nil,
			cbs:      nil,
			expected: config{},
		},
		{
			name: "defaults without callbacks",
			defaults: func() config {
				return config{limit: 10, prefix: "/", strict: false}
			},
			cbs:      nil,
			expected: config{limit: 10, prefix: "/", strict: false},
		},
		{
			name:     "nil defaults with a callback",
			defaults: nil,
			cbs: []options.Callback[config]{
				func(c *config) { c.limit = 3 },
			},
			expected: config{limit: 3},
		},
		{
			name: "callbacks run in order",
			defaults: func() config {
				return config{limit: 1}
			},
			cbs: []options.Callback[config]{
				func(c *config) { c.limit *= 5 },
				func(c *config) { c.limit += 2 },
				func(c *config) { c.strict = true },
			},
			expected: config{limit: 7, strict: true},
		},
		{
			name:     "nil callbacks are skipped",
			defaults: nil,
			cbs: []options.Callback[config]{
				nil,
				func(c *config) { c.prefix = "app/" },
				nil,
			},
			expected: config{prefix: "app/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.Apply(tt.defaults, tt.cbs))
		})
	}
}

func TestApply_Pointer(t *testing.T) {
	t.Parallel()

	type data struct{ x int }

	defaults := func() *data { return nil }
	cbs := []options.Callback[*data]{
		func(d **data) { *d = &data{x: 42} },
	}

	assert.Equal(t, &data{x: 42}, options.Apply(defaults, cbs))
}

func TestApply_DefaultsCalledPerApply(t *testing.T) {
	t.Parallel()

	defaults := func() []int { return []int{1} }
	cbs := []options.Callback[[]int]{
		func(s *[]int) { (*s)[0] = 99 },
	}

	assert.Equal(t, []int{99}, options.Apply(defaults, cbs))
	assert.Equal(t, []int{1}, options.Apply(defaults, nil))
}
