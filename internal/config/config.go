package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Translate contains configuration for cue translation.
type Translate struct {
	Provider         string `toml:"provider"`
	Model            string `toml:"model"`
	Concurrency      int    `toml:"concurrency"`
	BatchSize        int    `toml:"batch_size"`
	GeminiAPIKey     string `toml:"gemini_api_key"`
	OpenAIAPIKey     string `toml:"openai_api_key"`
	AnthropicAPIKey  string `toml:"anthropic_api_key"`
	OverlayOriginals bool   `toml:"overlay_originals"`
}

// FFmpeg contains configuration for the external ffmpeg binary.
type FFmpeg struct {
	Path string `toml:"path"`
}

// Check contains thresholds for the timing checks run by validate.
type Check struct {
	MinDurationMS    int  `toml:"min_duration_ms"`
	MaxCueDurationMS int  `toml:"max_cue_duration_ms"`
	AllowOverlap     bool `toml:"allow_overlap"`
}

// Config holds every tunable of the webvtt command.
type Config struct {
	Logging   Logging   `toml:"logging"`
	Translate Translate `toml:"translate"`
	FFmpeg    FFmpeg    `toml:"ffmpeg"`
	Check     Check     `toml:"check"`
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return expandPath(filepath.Join(base, "webvtt", "config.toml"))
	}
	return expandPath("~/.config/webvtt/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults and environment values are used instead.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv("WEBVTT_CONFIG"))
	}
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// APIKey returns the configured key for a translation provider.
func (c *Config) APIKey(provider string) string {
	switch strings.ToLower(provider) {
	case "gemini":
		return c.Translate.GeminiAPIKey
	case "openai":
		return c.Translate.OpenAIAPIKey
	case "anthropic":
		return c.Translate.AnthropicAPIKey
	}
	return ""
}

// Sample returns the commented sample configuration.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
