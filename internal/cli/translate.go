package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/webvtt/internal/translate"
	"github.com/mgpai22/webvtt/internal/vttio"
	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	translateCmd := &cobra.Command{
		Use:   "translate [subtitle_file]",
		Short: "Translate cue text to another language using AI",
		Long: `Translate the cue payloads of a WebVTT file to another language using an
LLM provider. Identifiers, timings and cue settings are kept as they are;
inline markup such as <i> and <v Speaker> is preserved.

The --overlay flag creates bilingual subtitles with the translated text
first, followed by the original text on the next line.

Provider, model, concurrency, batch size and API keys default to the
[translate] config section.

Examples:
  webvtt translate video.vtt --target-language japanese
  webvtt translate video.vtt -t ja --overlay
  webvtt translate video.vtt -l english -t spanish -o translated.vtt`,
		Args: cobra.ExactArgs(1),
		RunE: runTranslate,
	}

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Language of the source text (detected when empty)")
	translateCmd.Flags().
		Bool("overlay", false, "Overlay translated text with original (bilingual subtitles)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		Bool("model-override", false, "Allow any custom model, bypassing provider model validation")
	translateCmd.Flags().
		String("provider", "", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		Int("concurrency", 0, "Number of parallel translation workers")
	translateCmd.Flags().
		Int("batch-size", 0, "Number of cues per API request")

	_ = translateCmd.MarkFlagRequired("target-language")
	return translateCmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := cmd.Context()

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	modelOverride, _ := cmd.Flags().GetBool("model-override")
	providerStr, _ := cmd.Flags().GetString("provider")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	outputPath, _ := cmd.Flags().GetString("output")

	overlay := cfg.Translate.OverlayOriginals
	if cmd.Flags().Changed("overlay") {
		overlay, _ = cmd.Flags().GetBool("overlay")
	}
	if providerStr == "" {
		providerStr = cfg.Translate.Provider
	}
	if model == "" {
		model = cfg.Translate.Model
	}
	if !cmd.Flags().Changed("concurrency") {
		concurrency = cfg.Translate.Concurrency
	}
	if !cmd.Flags().Changed("batch-size") {
		batchSize = cfg.Translate.BatchSize
	}

	if strings.TrimSpace(targetLang) == "" {
		return fmt.Errorf("target language is required")
	}
	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	provider := translate.Provider(strings.ToLower(providerStr))
	if !modelOverride {
		if err := checkModel(provider, model); err != nil {
			return err
		}
	}

	if apiKey == "" {
		apiKey = cfg.APIKey(string(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s_API_KEY environment variable",
			strings.ToUpper(string(provider)),
		)
	}

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	if outputPath == "" && !vttio.IsStdio(subtitlePath) {
		outputPath = translatedPath(subtitlePath, targetLang, overlay)
	}

	logger.Infow("Starting subtitle translation",
		"input", displayName(subtitlePath),
		"output", outputPath,
		"target_language", targetLang,
		"input_language", inputLang,
		"overlay", overlay,
		"provider", provider,
		"model", model,
	)

	doc, err := readDocument(cmd, subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	items := translate.ItemsFromDocument(doc)
	if len(items) == 0 {
		return fmt.Errorf("subtitle file contains no cue text to translate")
	}

	opts := translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		BatchSize:      batchSize,
	}

	translator, err := translate.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Translating subtitles",
		"items", len(items),
		"concurrency", concurrency,
	)

	var results []translate.TranslationResult
	if concurrentTranslator, ok := translator.(translate.ConcurrentTranslator); ok {
		results, err = concurrentTranslator.TranslateWithConcurrency(
			ctx,
			items,
			concurrency,
		)
	} else {
		results, err = translator.Translate(ctx, items)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	logger.Infow("Translation complete",
		"results", len(results),
	)

	if err := translate.Apply(doc, results, overlay); err != nil {
		return fmt.Errorf("failed to apply translations: %w", err)
	}

	if err := writeTo(cmd.OutOrStdout(), outputPath, []byte(render(doc))); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if vttio.IsStdio(outputPath) {
		return nil
	}

	absOutput, _ := filepath.Abs(outputPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subtitles translated successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Cues: %d\n", len(items))
	fmt.Fprintf(out, "  Target language: %s\n", targetLang)
	if overlay {
		fmt.Fprintf(out, "  Mode: bilingual overlay\n")
	}
	return nil
}

// translatedPath names the output next to the input: subs.vtt becomes
// subs.ja.vtt, or subs.ja.overlay.vtt for bilingual output. A trailing .xz
// is carried over.
func translatedPath(input, targetLang string, overlay bool) string {
	compressed := ""
	if strings.HasSuffix(strings.ToLower(input), ".xz") {
		compressed = input[len(input)-3:]
		input = input[:len(input)-3]
	}

	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".vtt"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	lang := strings.ReplaceAll(strings.TrimSpace(targetLang), " ", "_")
	if overlay {
		return fmt.Sprintf("%s.%s.overlay%s%s", base, lang, ext, compressed)
	}
	return fmt.Sprintf("%s.%s%s%s", base, lang, ext, compressed)
}
