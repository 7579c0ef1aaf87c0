package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
)

func TestFactoryReturnsGeminiTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Japanese"}
	translator, err := Factory(ctx, ProviderGemini, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderGemini) returned error: %v", err)
	}
	if _, ok := translator.(*GeminiTranslator); !ok {
		t.Errorf("expected *GeminiTranslator, got %T", translator)
	}
}

func TestFactoryReturnsOpenAITranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Spanish"}
	translator, err := Factory(ctx, ProviderOpenAI, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderOpenAI) returned error: %v", err)
	}
	if _, ok := translator.(*OpenAITranslator); !ok {
		t.Errorf("expected *OpenAITranslator, got %T", translator)
	}
}

func TestFactoryReturnsAnthropicTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Italian"}
	translator, err := Factory(ctx, ProviderAnthropic, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderAnthropic) returned error: %v", err)
	}
	if _, ok := translator.(*AnthropicTranslator); !ok {
		t.Errorf("expected *AnthropicTranslator, got %T", translator)
	}
}

func TestFactoryRequiresTargetLanguage(t *testing.T) {
	ctx := context.Background()
	opts := Options{} // no TargetLanguage
	_, err := Factory(ctx, ProviderGemini, "fake-key", opts)
	if err == nil {
		t.Error("expected error for missing target language")
	}
}

func TestFactoryRequiresAPIKey(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	for _, p := range []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic} {
		if _, err := Factory(ctx, p, "", opts); err == nil {
			t.Errorf("expected error for %s without API key", p)
		}
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	_, err := Factory(ctx, Provider("unknown"), "fake-key", opts)
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestTranslatorsImplementConcurrentTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Korean"}
	for _, p := range []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic} {
		translator, err := Factory(ctx, p, "fake-key", opts)
		if err != nil {
			t.Fatalf("Factory(%s) error: %v", p, err)
		}
		if _, ok := translator.(ConcurrentTranslator); !ok {
			t.Errorf("%T should implement ConcurrentTranslator", translator)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	opts := Options{
		InputLanguage:  "English",
		TargetLanguage: "Japanese",
		Prompt:         "Use polite forms.",
	}
	items := []TranslationItem{
		{Index: 0, Text: "<v Roger>Hello world"},
		{Index: 1, Text: "Goodbye"},
	}

	prompt := BuildPrompt(opts, items)

	for _, want := range []string{
		"English WebVTT cue texts",
		"to Japanese",
		"<v Speaker>",
		"<v Roger>Hello world",
		`"index": 0`,
		"Additional instructions: Use polite forms.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
}

func TestBuildPromptWithoutInputLanguage(t *testing.T) {
	opts := Options{TargetLanguage: "Spanish"}
	prompt := BuildPrompt(opts, []TranslationItem{{Index: 0, Text: "Hello"}})

	if strings.Contains(prompt, "English") || strings.Contains(prompt, "Additional instructions") {
		t.Error("prompt should not mention unset options")
	}
	if !strings.Contains(prompt, "to Spanish") {
		t.Error("prompt should contain target language")
	}
}

var promptJSON = regexp.MustCompile(`(?s)Input JSON:\n(.*)\n\nOutput`)

// upperCaser answers every prompt by upper-casing the item texts.
func upperCaser(calls *atomic.Int32) completeFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		calls.Add(1)
		m := promptJSON.FindStringSubmatch(prompt)
		if m == nil {
			return "", errors.New("no input JSON in prompt")
		}
		var items []TranslationItem
		if err := json.Unmarshal([]byte(m[1]), &items); err != nil {
			return "", err
		}
		for i := range items {
			items[i].Text = strings.ToUpper(items[i].Text)
		}
		out, _ := json.Marshal(items)
		return "```json\n" + string(out) + "\n```", nil
	}
}

func makeItems(n int) []TranslationItem {
	items := make([]TranslationItem, n)
	for i := range items {
		items[i] = TranslationItem{Index: i * 2, Text: fmt.Sprintf("cue %d", i)}
	}
	return items
}

func TestBatcherTranslate(t *testing.T) {
	var calls atomic.Int32
	b := &batcher{
		options:  Options{TargetLanguage: "Upper", BatchSize: 4},
		provider: "fake",
		complete: upperCaser(&calls),
	}

	results, err := b.Translate(context.Background(), makeItems(10))
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 batches, got %d", calls.Load())
	}
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i*2 || r.Text != fmt.Sprintf("CUE %d", i) {
			t.Errorf("result %d = %+v", i, r)
		}
	}

	empty, err := b.Translate(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("Translate(nil) = %v, %v", empty, err)
	}
}

func TestBatcherTranslateWithConcurrency(t *testing.T) {
	var calls atomic.Int32
	b := &batcher{
		options:  Options{TargetLanguage: "Upper", BatchSize: 3},
		provider: "fake",
		complete: upperCaser(&calls),
	}

	results, err := b.TranslateWithConcurrency(context.Background(), makeItems(20), 4)
	if err != nil {
		t.Fatalf("TranslateWithConcurrency returned error: %v", err)
	}
	if calls.Load() != 7 {
		t.Errorf("expected 7 batches, got %d", calls.Load())
	}
	if len(results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i*2 {
			t.Fatalf("results not sorted by index: position %d has index %d", i, r.Index)
		}
	}
}

func TestBatcherStopsOnFirstError(t *testing.T) {
	var calls atomic.Int32
	upper := upperCaser(&calls)
	boom := errors.New("quota exceeded")
	b := &batcher{
		options:  Options{TargetLanguage: "Upper", BatchSize: 2},
		provider: "fake",
		complete: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "cue 4") {
				return "", boom
			}
			return upper(ctx, prompt)
		},
	}

	_, err := b.TranslateWithConcurrency(context.Background(), makeItems(12), 2)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}

	_, err = b.Translate(context.Background(), makeItems(12))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestBatcherRejectsEmptyReply(t *testing.T) {
	b := &batcher{
		options:  Options{TargetLanguage: "Upper"},
		provider: "fake",
		complete: func(ctx context.Context, prompt string) (string, error) {
			return "", nil
		},
	}
	_, err := b.Translate(context.Background(), makeItems(1))
	if err == nil || !strings.Contains(err.Error(), "no text in fake response") {
		t.Errorf("unexpected error %v", err)
	}
}

// Integration test: only runs if OPENAI_API_KEY is set
func TestOpenAITranslatorIntegration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY not set; skipping integration test")
	}

	ctx := context.Background()
	opts := Options{TargetLanguage: "Spanish"}
	translator, err := NewOpenAITranslator(ctx, apiKey, opts)
	if err != nil {
		t.Fatalf("NewOpenAITranslator error: %v", err)
	}

	items := []TranslationItem{
		{Index: 0, Text: "Hello"},
		{Index: 1, Text: "<i>Goodbye</i>"},
	}

	results, err := translator.Translate(ctx, items)
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Text == "" {
			t.Errorf("result index %d has empty text", r.Index)
		}
	}
}
