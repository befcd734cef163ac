package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		maxResults int
		expected   []string
	}{
		{
			name:       "typo",
			target:     "verzion",
			candidates: []string{"version", "add", "remove"},
			maxResults: 3,
			expected:   []string{"version"},
		},
		{
			name:       "prefix ranks first",
			target:     "hel",
			candidates: []string{"hello", "world", "help"},
			maxResults: 2,
			expected:   []string{"hello", "help"},
		},
		{
			name:       "exact match skipped",
			target:     "hello",
			candidates: []string{"hello", "hallo"},
			maxResults: 2,
			expected:   []string{"hallo"},
		},
		{
			name:       "limited results",
			target:     "--fla",
			candidates: []string{"--flag", "--flat", "--flax"},
			maxResults: 2,
			expected:   []string{"--flag", "--flat"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"hello", "world"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "no matches",
			target:     "xyz",
			candidates: []string{"hello", "world"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "no candidates",
			target:     "xyz",
			candidates: nil,
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "invalid max results",
			target:     "hello",
			candidates: []string{"hello", "world"},
			maxResults: -1,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindSimilar(tt.target, tt.candidates, tt.maxResults)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "perfect match", a: "hello", b: "hello", expected: 1.0},
		{name: "perfect match with different case", a: "Hello", b: "hello", expected: 1.0},
		{name: "prefix match", a: "hel", b: "hello", expected: 0.9},
		{name: "one substitution", a: "hallo", b: "hello", expected: 0.8},
		{name: "completely different strings", a: "hello", b: "world", expected: 0.2},
		{name: "one empty string", a: "hello", b: "", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculateSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.expected, result, 0.001, "similarity mismatch for %q and %q", tt.a, tt.b)
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical strings", a: "hello", b: "hello", expected: 0},
		{name: "substitution", a: "hello", b: "hallo", expected: 1},
		{name: "addition", a: "hello", b: "hello1", expected: 1},
		{name: "deletion", a: "hello", b: "hell", expected: 1},
		{name: "transposition", a: "flag", b: "falg", expected: 2},
		{name: "empty first string", a: "", b: "hello", expected: 5},
		{name: "empty second string", a: "hello", b: "", expected: 5},
		{name: "both empty strings", a: "", b: "", expected: 0},
		{name: "completely different strings", a: "hello", b: "world", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := levenshteinDistance(tt.a, tt.b)
			assert.Equal(t, tt.expected, result, "distance mismatch for %q and %q", tt.a, tt.b)
		})
	}
}
