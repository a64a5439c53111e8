package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"kokoro/pkg/prompts"
)

// Standard file names inside the prompt and data directories.
const (
	charactersFile     = "characters.json"
	openersFile        = "character_openers.json"
	emotionsFile       = "emotions.json"
	responsesFile      = "responses.json"
	constantsFile      = "constants.json"
	sensitiveWordsFile = "sensitive_words.txt"
)

// Settings is the process configuration of the configuration core itself:
// where the tracked files live and how the filter behaves.
type Settings struct {
	PromptsDir string `yaml:"prompts_dir"`
	DataDir    string `yaml:"data_dir"`
	Watch      struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"watch"`
	Filter struct {
		Keywords            []string `yaml:"keywords"`
		Replacement         string   `yaml:"replacement"`
		SimilarityThreshold float64  `yaml:"similarity_threshold"`
	} `yaml:"filter"`
}

// LoadSettings reads the settings file, falling back to defaults when it
// does not exist.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		// Set default values
		settings.PromptsDir = filepath.Join("config", "prompts")
		settings.DataDir = "data"
		settings.Filter.Replacement = "***"
		settings.Filter.SimilarityThreshold = 0.7
		return settings, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, settings)
	if err != nil {
		return nil, err
	}

	if settings.PromptsDir == "" {
		settings.PromptsDir = filepath.Join("config", "prompts")
	}
	if settings.DataDir == "" {
		settings.DataDir = "data"
	}
	if settings.Filter.Replacement == "" {
		settings.Filter.Replacement = "***"
	}
	if settings.Filter.SimilarityThreshold == 0 {
		settings.Filter.SimilarityThreshold = 0.7
	}

	return settings, nil
}

// Paths resolves the tracked file locations from the configured directories.
func (s *Settings) Paths() prompts.Paths {
	return prompts.Paths{
		Characters:     filepath.Join(s.PromptsDir, charactersFile),
		Openers:        filepath.Join(s.PromptsDir, openersFile),
		Emotions:       filepath.Join(s.PromptsDir, emotionsFile),
		Responses:      filepath.Join(s.PromptsDir, responsesFile),
		Constants:      filepath.Join(s.PromptsDir, constantsFile),
		SensitiveWords: filepath.Join(s.DataDir, sensitiveWordsFile),
	}
}
