package keywords

import (
	"log/slog"
	"strings"

	rake "github.com/afjoseph/RAKE.Go"
)

// filterWords are meta-instruction substrings. Phrases containing them are
// artifacts of the instruction itself rather than its subject matter.
var filterWords = []string{"explain", "describe", "define", "definition", "difference"}

// Extractor extracts salient keyword phrases from prompt text using RAKE.
type Extractor struct{}

// NewExtractor creates a new keyword extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns ranked keyword phrases, highest score first, with
// meta-instruction phrases filtered out. An empty result is valid and means
// the prompt has no salient non-stopword phrases.
func (e *Extractor) Extract(text string) []string {
	candidates := rake.RunRake(text)

	phrases := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		phrases = append(phrases, candidate.Key)
	}

	filtered := filterMetaWords(phrases)
	slog.Debug("extracted keywords", "candidates", len(phrases), "kept", len(filtered))

	return filtered
}

// filterMetaWords drops any phrase whose lowercase form contains a meta word.
func filterMetaWords(phrases []string) []string {
	filtered := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if containsMetaWord(phrase) {
			continue
		}
		filtered = append(filtered, phrase)
	}
	return filtered
}

func containsMetaWord(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, word := range filterWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
