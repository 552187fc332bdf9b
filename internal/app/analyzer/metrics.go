package analyzer

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"storycoach/internal/app/model"
)

// CountMetrics computes the transcript statistics for the given filler
// vocabulary. It is a pure function.
//
// Tokenization rule: word_count is the number of whitespace-delimited tokens
// (strings.Fields); punctuation stays attached to its token. Filler matching
// is case-insensitive, word-boundary-respecting and non-overlapping, and
// supports multi-word phrases.
func CountMetrics(transcript string, vocabulary []string) model.Metrics {
	counts := make(map[string]int, len(vocabulary))
	for _, entry := range vocabulary {
		token := strings.ToLower(strings.TrimSpace(entry))
		if token == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
		counts[token] = len(re.FindAllStringIndex(transcript, -1))
	}

	return model.Metrics{
		WordCount:        len(strings.Fields(transcript)),
		FillerWords:      counts,
		TotalFillerWords: lo.Sum(lo.Values(counts)),
	}
}
