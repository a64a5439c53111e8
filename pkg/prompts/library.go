// Package prompts is the typed configuration surface of the chat service:
// character definitions, per-character openers, canned response groups,
// emotion rules, constants and the sensitive-word list, all served from a
// hot-reloading store so on-disk edits show up without a restart.
package prompts

import (
	"fmt"

	"github.com/tidwall/gjson"

	"kokoro/pkg/hotconfig"
)

// Library wraps the store with domain-shaped accessors. Accessors never
// re-parse; they only traverse the already-parsed value, so an absent id or
// path fails with hotconfig.ErrNotFound rather than a parse-related error.
type Library struct {
	store *hotconfig.Store
}

// NewLibrary registers the standard tracked files and returns the façade.
// No file is read yet; the first access per key loads it.
func NewLibrary(paths Paths, opts ...hotconfig.Option) (*Library, error) {
	store, err := hotconfig.New(Specs(paths), opts...)
	if err != nil {
		return nil, err
	}
	return &Library{store: store}, nil
}

// Store exposes the underlying store for lifecycle operations such as
// ReloadAll and for attaching a change notifier.
func (l *Library) Store() *hotconfig.Store { return l.store }

// Characters returns the full character configuration.
func (l *Library) Characters() (Characters, error) {
	v, err := l.store.Get(KeyCharacters)
	if err != nil {
		return Characters{}, err
	}
	return v.(Characters), nil
}

// Character looks up one character by id.
func (l *Library) Character(id string) (CharacterDefinition, error) {
	chars, err := l.Characters()
	if err != nil {
		return CharacterDefinition{}, err
	}
	def, ok := chars.ByID[id]
	if !ok {
		return CharacterDefinition{}, fmt.Errorf("character %q: %w", id, hotconfig.ErrNotFound)
	}
	return def, nil
}

// WorldBackground returns the shared world background text, empty when the
// characters file does not define one.
func (l *Library) WorldBackground() (string, error) {
	chars, err := l.Characters()
	if err != nil {
		return "", err
	}
	return chars.WorldBackground, nil
}

// Guidance returns the shared guidance text, empty when not defined.
func (l *Library) Guidance() (string, error) {
	chars, err := l.Characters()
	if err != nil {
		return "", err
	}
	return chars.Guidance, nil
}

// Openers returns the opener lines for a character, in file order. A
// character with no openers yields an empty list, not an error; selection
// policy belongs to the caller.
func (l *Library) Openers(characterID string) ([]string, error) {
	v, err := l.store.Get(KeyOpeners)
	if err != nil {
		return nil, err
	}
	return v.(map[string][]string)[characterID], nil
}

// ResponseGroups returns every canned response group.
func (l *Library) ResponseGroups() (map[string][]string, error) {
	v, err := l.store.Get(KeyResponses)
	if err != nil {
		return nil, err
	}
	return v.(map[string][]string), nil
}

// Responses returns one canned response group ("sensitive_responses",
// "error_responses", ...) in file order.
func (l *Library) Responses(group string) ([]string, error) {
	groups, err := l.ResponseGroups()
	if err != nil {
		return nil, err
	}
	list, ok := groups[group]
	if !ok {
		return nil, fmt.Errorf("response group %q: %w", group, hotconfig.ErrNotFound)
	}
	return list, nil
}

// Emotions returns the emotion configuration as an opaque document.
func (l *Library) Emotions() (map[string]any, error) {
	v, err := l.store.Get(KeyEmotions)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// Constants returns the constants document.
func (l *Library) Constants() (Constants, error) {
	v, err := l.store.Get(KeyConstants)
	if err != nil {
		return Constants{}, err
	}
	return v.(Constants), nil
}

// Constant resolves a dot path inside the constants document.
func (l *Library) Constant(path string) (gjson.Result, error) {
	constants, err := l.Constants()
	if err != nil {
		return gjson.Result{}, err
	}
	result, ok := constants.Lookup(path)
	if !ok {
		return gjson.Result{}, fmt.Errorf("constant %q: %w", path, hotconfig.ErrNotFound)
	}
	return result, nil
}

// SensitiveWords returns the current sensitive-word set.
func (l *Library) SensitiveWords() (WordSet, error) {
	v, err := l.store.Get(KeySensitiveWords)
	if err != nil {
		return WordSet{}, err
	}
	return v.(WordSet), nil
}
