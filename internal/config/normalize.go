package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	c.Translate.Provider = strings.ToLower(strings.TrimSpace(c.Translate.Provider))
	if c.Translate.Provider == "" {
		c.Translate.Provider = defaultProvider
	}
	c.Translate.Model = strings.TrimSpace(c.Translate.Model)
	c.Translate.GeminiAPIKey = fromEnv(c.Translate.GeminiAPIKey, "GEMINI_API_KEY")
	c.Translate.OpenAIAPIKey = fromEnv(c.Translate.OpenAIAPIKey, "OPENAI_API_KEY")
	c.Translate.AnthropicAPIKey = fromEnv(c.Translate.AnthropicAPIKey, "ANTHROPIC_API_KEY")

	c.FFmpeg.Path = fromEnv(c.FFmpeg.Path, "WEBVTT_FFMPEG_PATH")
}

// fromEnv returns value, or the environment variable when value is empty.
func fromEnv(value, key string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	if env, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(env)
	}
	return ""
}
