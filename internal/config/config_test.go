package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "whisper-1", cfg.Whisper.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.Chat.Model)
	assert.Equal(t, ".", cfg.Paths.Input)
	assert.Equal(t, "data", cfg.Paths.Data)
	assert.Contains(t, cfg.Analysis.FillerWords, "um")
	assert.Contains(t, cfg.Analysis.FillerWords, "you know")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "storycoach.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storycoach.yaml")
	content := `
chat:
  model: gpt-4o
analysis:
  filler_words:
    - um
    - basically
paths:
  data: out
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Chat.Model)
	assert.Equal(t, []string{"um", "basically"}, cfg.Analysis.FillerWords)
	assert.Equal(t, "out", cfg.Paths.Data)
	// untouched sections keep their defaults
	assert.Equal(t, "whisper-1", cfg.Whisper.Model)
	assert.Equal(t, ".", cfg.Paths.Input)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storycoach.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storycoach.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  filler_words: []\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filler_words")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{"missing_whisper_model", func(c *Config) { c.Whisper.Model = "" }, "whisper.model"},
		{"missing_chat_model", func(c *Config) { c.Chat.Model = "" }, "chat.model"},
		{"missing_input", func(c *Config) { c.Paths.Input = "" }, "paths.input"},
		{"missing_data", func(c *Config) { c.Paths.Data = "" }, "paths.data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
