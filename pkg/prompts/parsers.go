package prompts

import (
	"encoding/json"
	"strings"

	"kokoro/pkg/hotconfig"
)

// Paths locates the six tracked configuration files. They are process
// configuration: nothing in this package hardcodes a directory layout.
type Paths struct {
	Characters     string
	Openers        string
	Emotions       string
	Responses      string
	Constants      string
	SensitiveWords string
}

// Specs builds the store registration for the standard file set.
func Specs(p Paths) []hotconfig.FileSpec {
	return []hotconfig.FileSpec{
		{Key: KeyCharacters, Path: p.Characters, Parse: parseCharacters},
		{Key: KeyOpeners, Path: p.Openers, Parse: parseOpeners},
		{Key: KeyEmotions, Path: p.Emotions, Parse: hotconfig.JSONObject(KeyEmotions)},
		{Key: KeyResponses, Path: p.Responses, Parse: parseResponses},
		{Key: KeyConstants, Path: p.Constants, Parse: parseConstants},
		{Key: KeySensitiveWords, Path: p.SensitiveWords, Parse: parseWordList},
	}
}

func parseCharacters(data []byte) (any, error) {
	var doc struct {
		WorldBackground string                         `json:"world_background"`
		Guidance        string                         `json:"guidance"`
		Characters      map[string]CharacterDefinition `json:"characters"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, hotconfig.ClassifyJSONError(KeyCharacters, err)
	}
	if doc.Characters == nil {
		return nil, &hotconfig.ShapeError{Key: KeyCharacters, Reason: `missing required "characters" object`}
	}
	byID := make(map[string]CharacterDefinition, len(doc.Characters))
	for id, def := range doc.Characters {
		def.ID = id
		byID[id] = def
	}
	return Characters{
		WorldBackground: doc.WorldBackground,
		Guidance:        doc.Guidance,
		ByID:            byID,
	}, nil
}

func parseOpeners(data []byte) (any, error) {
	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, hotconfig.ClassifyJSONError(KeyOpeners, err)
	}
	if doc == nil {
		return nil, &hotconfig.ShapeError{Key: KeyOpeners, Reason: "top-level value must be an object"}
	}
	return doc, nil
}

func parseResponses(data []byte) (any, error) {
	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, hotconfig.ClassifyJSONError(KeyResponses, err)
	}
	if doc == nil {
		return nil, &hotconfig.ShapeError{Key: KeyResponses, Reason: "top-level value must be an object"}
	}
	return doc, nil
}

func parseConstants(data []byte) (any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, hotconfig.ClassifyJSONError(KeyConstants, err)
	}
	if doc == nil {
		return nil, &hotconfig.ShapeError{Key: KeyConstants, Reason: "top-level value must be an object"}
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return Constants{doc: doc, raw: raw}, nil
}

// parseWordList splits the sensitive-word file into one word per line,
// skipping blank lines and # comments, dropping duplicates in file order.
func parseWordList(data []byte) (any, error) {
	lines := strings.Split(string(data), "\n")
	words := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return newWordSet(words), nil
}
