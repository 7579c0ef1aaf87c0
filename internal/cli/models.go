package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mgpai22/webvtt/internal/translate"
)

var (
	geminiModels = []string{
		"gemini-3-pro-preview",
		"gemini-3-flash-preview",
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.5-flash-lite",
	}
	openAIModels = []string{
		"o1", "o3-mini", "o1-pro", "o3",
		"gpt-5", "gpt-5-nano", "gpt-5-mini", "gpt-5-pro",
		"gpt-5.1", "gpt-5.2", "gpt-5.2-pro",
	}
	anthropicModels = []string{
		"claude-haiku-4-5",
		"claude-sonnet-4-5",
		"claude-opus-4-1",
		"claude-opus-4-5",
	}
)

func isValidGeminiModel(model string) bool {
	return slices.Contains(geminiModels, model)
}

func isValidOpenAIModel(model string) bool {
	return slices.Contains(openAIModels, model)
}

func isValidAnthropicModel(model string) bool {
	return slices.Contains(anthropicModels, model)
}

// checkModel rejects models the provider is not known to serve. An empty
// model always passes; the translator picks its own default.
func checkModel(provider translate.Provider, model string) error {
	if model == "" {
		return nil
	}

	var (
		name  string
		valid []string
		ok    bool
	)
	switch provider {
	case translate.ProviderGemini:
		name, valid, ok = "Gemini", geminiModels, isValidGeminiModel(model)
	case translate.ProviderOpenAI:
		name, valid, ok = "OpenAI", openAIModels, isValidOpenAIModel(model)
	case translate.ProviderAnthropic:
		name, valid, ok = "Anthropic", anthropicModels, isValidAnthropicModel(model)
	default:
		return fmt.Errorf("unsupported translation provider: %s", provider)
	}
	if ok {
		return nil
	}
	return fmt.Errorf(
		"unsupported %s model %q: valid models are %s (use --model-override to bypass)",
		name,
		model,
		strings.Join(valid, ", "),
	)
}
