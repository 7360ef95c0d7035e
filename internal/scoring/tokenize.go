package scoring

import (
	"math"
	"strings"
)

// tokenize lowercases text and extracts maximal runs of ASCII letters and
// digits. Punctuation, whitespace, and non-ASCII bytes act as separators.
func tokenize(text string) []string {
	var tokens []string
	var current []byte

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			current = append(current, c)
		case c >= 'A' && c <= 'Z':
			current = append(current, c+('a'-'A'))
		default:
			if len(current) > 0 {
				tokens = append(tokens, string(current))
				current = current[:0]
			}
		}
	}

	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}

	return tokens
}

// termCounts builds a token -> occurrence count map
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// cosineSimilarity computes the normalized dot product of two token-count
// vectors over the union of their vocabularies. Returns 0.0 when either
// vector is empty or has zero norm.
func cosineSimilarity(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dot := 0
	for term, countA := range a {
		if countB, ok := b[term]; ok {
			dot += countA * countB
		}
	}

	var normA, normB float64
	for _, count := range a {
		normA += float64(count * count)
	}
	for _, count := range b {
		normB += float64(count * count)
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return float64(dot) / (math.Sqrt(normA) * math.Sqrt(normB))
}

// splitSentences splits text on runs of sentence terminators (. ! ?) and
// discards fragments that contain no words.
func splitSentences(text string) []string {
	var sentences []string

	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && !isSentenceTerminator(text[i]) {
			continue
		}
		fragment := strings.TrimSpace(text[start:i])
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
		// Skip over the rest of the terminator run
		for i < len(text) && isSentenceTerminator(text[i]) {
			i++
		}
		start = i
	}

	return sentences
}

func isSentenceTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
