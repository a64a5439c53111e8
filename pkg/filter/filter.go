// Package filter screens chat text against the hot-reloaded sensitive-word
// list and cleans up repetitive model output. Every call fetches the current
// word set through the prompts façade, so an edit to the word file applies
// to the next message without a restart.
package filter

import (
	"regexp"
	"strings"

	"kokoro/pkg/prompts"
)

const defaultReplacement = "***"

// Filter is the content screen used on both user input and model output.
type Filter struct {
	lib            *prompts.Library
	keywordPattern *regexp.Regexp // nil when no extra keywords configured
	replacement    string
}

// New builds a filter over the library. The optional keywords are an extra
// caller-supplied watch list, matched independently of the sensitive words.
func New(lib *prompts.Library, keywords ...string) *Filter {
	f := &Filter{lib: lib, replacement: defaultReplacement}
	if len(keywords) > 0 {
		quoted := make([]string, len(keywords))
		for i, kw := range keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		f.keywordPattern = regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
	}
	return f
}

// SetReplacement overrides the redaction placeholder.
func (f *Filter) SetReplacement(replacement string) {
	if replacement != "" {
		f.replacement = replacement
	}
}

// Detect reports whether text contains any sensitive word, and which ones.
func (f *Filter) Detect(text string) (bool, []string, error) {
	words, err := f.lib.SensitiveWords()
	if err != nil {
		return false, nil, err
	}
	matches := words.Match(text)
	return len(matches) > 0, matches, nil
}

// Redact replaces every sensitive word in text with the placeholder.
func (f *Filter) Redact(text string) (string, error) {
	words, err := f.lib.SensitiveWords()
	if err != nil {
		return "", err
	}
	return words.Replace(text, f.replacement), nil
}

// Keywords returns the distinct extra keywords found in text.
func (f *Filter) Keywords(text string) []string {
	if f.keywordPattern == nil {
		return nil
	}
	found := f.keywordPattern.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(found))
	var unique []string
	for _, hit := range found {
		lower := strings.ToLower(hit)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, hit)
	}
	return unique
}

// Result is the combined outcome of screening one piece of text.
type Result struct {
	Sensitive      bool
	SensitiveWords []string
	Keywords       []string
	Processed      string
}

// Process runs detection, keyword matching and repetition removal in one
// pass, mirroring what the chat pipeline does per message.
func (f *Filter) Process(text string, similarityThreshold float64) (Result, error) {
	sensitive, matches, err := f.Detect(text)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Sensitive:      sensitive,
		SensitiveWords: matches,
		Keywords:       f.Keywords(text),
		Processed:      RemoveRepetitions(text, similarityThreshold),
	}, nil
}
