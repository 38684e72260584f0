// Package config reads action inputs from the environment.
package config

import (
	"fmt"
	"os"
)

const (
	defaultModel    = "gpt-4o-mini"
	defaultLanguage = "English"
)

// Config holds everything the pipeline reads at startup.
type Config struct {
	GitHubToken string
	OpenAIKey   string
	Model       string
	Exclude     string // comma-separated glob patterns
	Language    string // language review comments are written in
	EventPath   string // path to the trigger payload
}

// Load reads configuration once from the environment. Inputs follow the
// GitHub Actions convention (INPUT_<NAME>) and fall back to the plain
// variable name for local runs.
func Load() (Config, error) {
	cfg := Config{
		GitHubToken: input("GITHUB_TOKEN"),
		OpenAIKey:   input("OPENAI_API_KEY"),
		Model:       input("OPENAI_API_MODEL"),
		Exclude:     input("EXCLUDE"),
		Language:    input("RESPONSE_LANGUAGE"),
		EventPath:   os.Getenv("GITHUB_EVENT_PATH"),
	}

	if cfg.GitHubToken == "" {
		return Config{}, fmt.Errorf("GITHUB_TOKEN is not set")
	}
	if cfg.OpenAIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if cfg.EventPath == "" {
		return Config{}, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}

	return cfg, nil
}

func input(name string) string {
	if v := os.Getenv("INPUT_" + name); v != "" {
		return v
	}
	return os.Getenv(name)
}
