package prompts

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Logical keys of the tracked configuration files.
const (
	KeyCharacters     = "characters"
	KeyOpeners        = "openers"
	KeyEmotions       = "emotions"
	KeyResponses      = "responses"
	KeyConstants      = "constants"
	KeySensitiveWords = "sensitive_words"
)

// CharacterDefinition is one entry of the characters file. Prompt text is
// kept verbatim; placeholder substitution is the caller's business.
type CharacterDefinition struct {
	ID          string   `json:"-"`
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	Traits      []string `json:"traits"`
	SysPrompt   string   `json:"sys_prompt"`
	UserPrompt  string   `json:"user_prompt"`
	GuestPrompt string   `json:"guest_prompt"`
}

// Characters is the parsed characters file: the id-keyed definitions plus
// the shared world background and guidance text.
type Characters struct {
	WorldBackground string
	Guidance        string
	ByID            map[string]CharacterDefinition
}

// Constants is the parsed constants file. The raw document is retained so
// nested values can be addressed by dot path without re-walking the map.
type Constants struct {
	doc map[string]any
	raw []byte
}

// Map returns the decoded top-level object.
func (c Constants) Map() map[string]any { return c.doc }

// Lookup resolves a gjson dot path ("color_map.red", "action_list.0")
// against the constants document.
func (c Constants) Lookup(path string) (gjson.Result, bool) {
	result := gjson.GetBytes(c.raw, path)
	return result, result.Exists()
}

// WordSet is the parsed sensitive-word list: insertion-ordered unique words
// plus a prebuilt case-insensitive matcher. The matcher is compiled once per
// reload, so the value stays immutable and match calls stay allocation-light.
type WordSet struct {
	words   []string
	index   map[string]struct{}
	pattern *regexp.Regexp // nil when the list is empty
}

func newWordSet(words []string) WordSet {
	set := WordSet{words: words, index: make(map[string]struct{}, len(words))}
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		set.index[w] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) > 0 {
		set.pattern = regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
	}
	return set
}

// Words returns the list in file order.
func (w WordSet) Words() []string { return w.words }

// Len returns the number of distinct words.
func (w WordSet) Len() int { return len(w.words) }

// Contains reports exact membership of a single word.
func (w WordSet) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// Match returns the distinct words found in text, case-insensitively.
func (w WordSet) Match(text string) []string {
	if w.pattern == nil {
		return nil
	}
	found := w.pattern.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(found))
	unique := found[:0]
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

// Replace substitutes every occurrence of a listed word in text.
func (w WordSet) Replace(text, replacement string) string {
	if w.pattern == nil {
		return text
	}
	return w.pattern.ReplaceAllString(text, replacement)
}
