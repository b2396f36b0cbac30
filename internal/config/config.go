package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Enabled        bool   `toml:"enabled"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Prompt         string `toml:"prompt"`
}

type DetectorConfig struct {
	MinParagraphTokens int     `toml:"min_paragraph_tokens"`
	RelevanceThreshold float64 `toml:"relevance_threshold"`
	MinSentences       int     `toml:"min_sentences"`
}

// VerdictConfig holds both threshold policies: the single-pair endpoint
// verdicts on 0.8/0.5, the per-paragraph document endpoint on 0.7/0.4.
type VerdictConfig struct {
	PairHigh   float64 `toml:"pair_high"`
	PairMedium float64 `toml:"pair_medium"`
	DocHigh    float64 `toml:"doc_high"`
	DocMedium  float64 `toml:"doc_medium"`
}

type LanguageConfig struct {
	Stopwords      []string `toml:"stopwords"`
	MinTokenLength int      `toml:"min_token_length"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	LLM      LLMConfig      `toml:"llm"`
	Detector DetectorConfig `toml:"detector"`
	Verdict  VerdictConfig  `toml:"verdict"`
	Language LanguageConfig `toml:"language"`
}

const defaultPrompt = "You are a plagiarism checker. Compare the following two texts and respond with a similarity percentage between 0 and 100, followed by a one or two sentence explanation.\n\nText 1:\n%s\n\nText 2:\n%s"

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		LLM: LLMConfig{
			Provider:       "ollama",
			Model:          "llama3",
			BaseURL:        "http://localhost:11434",
			Enabled:        false,
			TimeoutSeconds: 60,
			Prompt:         defaultPrompt,
		},
		Detector: DetectorConfig{
			MinParagraphTokens: 10,
			RelevanceThreshold: 0.3,
			MinSentences:       1,
		},
		Verdict: VerdictConfig{
			PairHigh:   0.8,
			PairMedium: 0.5,
			DocHigh:    0.7,
			DocMedium:  0.4,
		},
		Language: LanguageConfig{
			Stopwords:      []string{"english", "indonesian"},
			MinTokenLength: 3,
		},
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if cfg.LLM.Prompt == "" {
		cfg.LLM.Prompt = defaultPrompt
	}

	return cfg, nil
}

// ApplyEnv overrides config values with environment variables if present.
func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		c.LLM.BaseURL = baseURL
	}
	if enabled := os.Getenv("LLM_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(strings.TrimSpace(enabled)); err == nil {
			c.LLM.Enabled = v
		}
	}
}
