package filter

import "strings"

// sentenceSeparator matches the ideographic full stop the chat models end
// sentences with.
const sentenceSeparator = "。"

// Similarity scores two strings in [0, 1] as twice the length of their
// longest common subsequence over their combined length, so identical
// strings score 1 and disjoint ones 0.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	// Two-row LCS table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// Repetition is one detected pair of near-duplicate sentences.
type Repetition struct {
	First  string
	Second string
	Score  float64
}

// DetectRepetitions finds sentence pairs whose similarity exceeds the
// threshold. Sentences are split on the ideographic full stop.
func DetectRepetitions(text string, threshold float64) []Repetition {
	sentences := strings.Split(text, sentenceSeparator)
	var found []Repetition
	for i := 0; i < len(sentences); i++ {
		for j := i + 1; j < len(sentences); j++ {
			score := Similarity(sentences[i], sentences[j])
			if score > threshold {
				found = append(found, Repetition{First: sentences[i], Second: sentences[j], Score: score})
			}
		}
	}
	return found
}

// RemoveRepetitions drops sentences too similar to an earlier one and
// rejoins the rest, keeping first occurrences.
func RemoveRepetitions(text string, threshold float64) string {
	sentences := strings.Split(text, sentenceSeparator)
	kept := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		duplicate := false
		for _, prior := range kept {
			if Similarity(sentence, prior) > threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, sentence)
		}
	}
	return strings.Join(kept, sentenceSeparator)
}
