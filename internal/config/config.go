package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of the tool. Everything has a default;
// a storycoach.yaml file can override any of it.
type Config struct {
	Whisper  WhisperConfig  `yaml:"whisper"`
	Chat     ChatConfig     `yaml:"chat"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Paths    PathsConfig    `yaml:"paths"`
}

type WhisperConfig struct {
	Model string `yaml:"model"`
}

type ChatConfig struct {
	Model string `yaml:"model"`
}

type AnalysisConfig struct {
	// FillerWords is the fixed vocabulary scanned for in transcripts.
	// Entries may be multi-word phrases; matching is case-insensitive.
	FillerWords []string `yaml:"filler_words"`
}

type PathsConfig struct {
	// Input is the directory scanned for the audio file.
	Input string `yaml:"input"`
	// Data is the root under which per-run workspaces are created.
	Data string `yaml:"data"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Whisper: WhisperConfig{Model: "whisper-1"},
		Chat:    ChatConfig{Model: "gpt-4o-mini"},
		Analysis: AnalysisConfig{
			FillerWords: []string{
				"um", "uh", "like", "you know", "sort of", "kind of",
				"basically", "actually", "i mean", "so", "well", "right",
			},
		},
		Paths: PathsConfig{
			Input: ".",
			Data:  "data",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.Model == "" {
		return fmt.Errorf("whisper.model is required")
	}
	if c.Chat.Model == "" {
		return fmt.Errorf("chat.model is required")
	}
	if len(c.Analysis.FillerWords) == 0 {
		return fmt.Errorf("analysis.filler_words must not be empty")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Data == "" {
		return fmt.Errorf("paths.data is required")
	}
	return nil
}
