package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMetrics_FillerWords(t *testing.T) {
	tests := []struct {
		name           string
		transcript     string
		vocabulary     []string
		expectedCounts map[string]int
		expectedTotal  int
	}{
		{
			name:           "punctuation_attached_fillers",
			transcript:     "Um, like, I... like that",
			vocabulary:     []string{"um", "like"},
			expectedCounts: map[string]int{"um": 1, "like": 2},
			expectedTotal:  3,
		},
		{
			name:           "case_insensitive",
			transcript:     "UM um Um uM",
			vocabulary:     []string{"um"},
			expectedCounts: map[string]int{"um": 4},
			expectedTotal:  4,
		},
		{
			name:           "word_boundary_no_substring_match",
			transcript:     "The umbrella is unlike anything, drumming along.",
			vocabulary:     []string{"um", "like"},
			expectedCounts: map[string]int{"um": 0, "like": 0},
			expectedTotal:  0,
		},
		{
			name:           "multi_word_phrases",
			transcript:     "You know, it was sort of strange, you know?",
			vocabulary:     []string{"you know", "sort of"},
			expectedCounts: map[string]int{"you know": 2, "sort of": 1},
			expectedTotal:  3,
		},
		{
			name:           "empty_transcript",
			transcript:     "",
			vocabulary:     []string{"um"},
			expectedCounts: map[string]int{"um": 0},
			expectedTotal:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := CountMetrics(tt.transcript, tt.vocabulary)
			assert.Equal(t, tt.expectedCounts, metrics.FillerWords)
			assert.Equal(t, tt.expectedTotal, metrics.TotalFillerWords)
		})
	}
}

// The tokenization rule is fixed as strings.Fields: whitespace-delimited
// tokens with punctuation attached. "This is a test. This is only a test."
// splits into 9 such tokens.
func TestCountMetrics_WordCount(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   int
	}{
		{
			name:       "fixed_fixture",
			transcript: "This is a test. This is only a test.",
			expected:   9,
		},
		{
			name:       "collapses_repeated_whitespace",
			transcript: "one  two\tthree\nfour",
			expected:   4,
		},
		{
			name:       "empty",
			transcript: "",
			expected:   0,
		},
		{
			name:       "whitespace_only",
			transcript: "   \n\t ",
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := CountMetrics(tt.transcript, []string{"um"})
			assert.Equal(t, tt.expected, metrics.WordCount)
		})
	}
}

func TestCountMetrics_IsPure(t *testing.T) {
	transcript := "Um, well, you know."
	vocabulary := []string{"um", "well", "you know"}

	first := CountMetrics(transcript, vocabulary)
	second := CountMetrics(transcript, vocabulary)
	assert.Equal(t, first, second)
}
