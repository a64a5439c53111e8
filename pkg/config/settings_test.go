package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	// Provide a path that definitely doesn't exist
	settings, err := LoadSettings("non_existent_settings.yml")
	require.NoError(t, err)

	// Verify default values
	assert.Equal(t, filepath.Join("config", "prompts"), settings.PromptsDir)
	assert.Equal(t, "data", settings.DataDir)
	assert.False(t, settings.Watch.Enabled)
	assert.Equal(t, "***", settings.Filter.Replacement)
	assert.Equal(t, 0.7, settings.Filter.SimilarityThreshold)
}

func TestLoadSettings_ValidFile(t *testing.T) {
	content := []byte(`
prompts_dir: /etc/kokoro/prompts
data_dir: /etc/kokoro/data
watch:
  enabled: true
filter:
  replacement: "[removed]"
  similarity_threshold: 0.9
  keywords:
    - refund
`)
	tmpfile, err := os.CreateTemp("", "settings_test_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "/etc/kokoro/prompts", settings.PromptsDir)
	assert.Equal(t, "/etc/kokoro/data", settings.DataDir)
	assert.True(t, settings.Watch.Enabled)
	assert.Equal(t, "[removed]", settings.Filter.Replacement)
	assert.Equal(t, 0.9, settings.Filter.SimilarityThreshold)
	assert.Equal(t, []string{"refund"}, settings.Filter.Keywords)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	content := []byte(`
prompts_dir: ok
watch: [ unclosed bracket
`)
	tmpfile, err := os.CreateTemp("", "settings_invalid_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, settings)
}

func TestSettings_Paths(t *testing.T) {
	settings, err := LoadSettings("non_existent_settings.yml")
	require.NoError(t, err)
	settings.PromptsDir = "p"
	settings.DataDir = "d"

	paths := settings.Paths()
	assert.Equal(t, filepath.Join("p", "characters.json"), paths.Characters)
	assert.Equal(t, filepath.Join("p", "character_openers.json"), paths.Openers)
	assert.Equal(t, filepath.Join("p", "emotions.json"), paths.Emotions)
	assert.Equal(t, filepath.Join("p", "responses.json"), paths.Responses)
	assert.Equal(t, filepath.Join("p", "constants.json"), paths.Constants)
	assert.Equal(t, filepath.Join("d", "sensitive_words.txt"), paths.SensitiveWords)
}
