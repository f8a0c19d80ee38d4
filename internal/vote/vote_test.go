package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	for v := -10; v <= 12; v++ {
		expected := v
		if expected < 0 {
			expected = 0
		}
		if expected > MaxPoints {
			expected = MaxPoints
		}
		assert.Equal(t, expected, Clamp(v), "Clamp(%d)", v)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"7", 5},
		{"3", 3},
		{" 2 ", 2},
		{"0", 0},
		{"-4", 0},
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{"2.9", 2},
		{"4px", 4},
		{"99999999999999999999999", MaxPoints},
		{"-99999999999999999999999", 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Parse(test.raw), "Parse(%q)", test.raw)
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name     string
		own      map[string]int
		expected int
	}{
		{"nil", nil, 5},
		{"empty", map[string]int{}, 5},
		{"partial", map[string]int{"a": 2, "b": 1}, 2},
		{"full", map[string]int{"a": 5}, 0},
		{"over budget floors at zero", map[string]int{"a": 4, "b": 4}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Remaining(test.own))
		})
	}
}

func TestUsed(t *testing.T) {
	assert.Equal(t, 0, Used(nil))
	assert.Equal(t, 6, Used(map[string]int{"a": 1, "b": 5}))
}
