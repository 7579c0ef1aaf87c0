package translate

import (
	"fmt"
	"strings"

	"github.com/mgpai22/webvtt/webvtt"
)

// ItemsFromDocument returns one item per cue with a payload. Index is the
// cue's position in doc.Cues.
func ItemsFromDocument(doc *webvtt.Document) []TranslationItem {
	items := make([]TranslationItem, 0, len(doc.Cues))
	for i, cue := range doc.Cues {
		if strings.TrimSpace(cue.Payload) == "" {
			continue
		}
		items = append(items, TranslationItem{Index: i, Text: cue.Payload})
	}
	return items
}

// Apply writes translated payloads back into doc. Identifiers, timings and
// settings are untouched. With overlay set the original text is kept on
// the lines below the translation. Blank lines in a translation are
// dropped because a blank line would end the cue.
func Apply(doc *webvtt.Document, results []TranslationResult, overlay bool) error {
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(doc.Cues) {
			return fmt.Errorf("translation result index %d out of range (%d cues)", r.Index, len(doc.Cues))
		}
	}

	for _, r := range results {
		cue := &doc.Cues[r.Index]
		text := dropBlankLines(r.Text)
		if text == "" {
			continue
		}
		if overlay {
			text = text + "\n" + cue.Payload
		}
		cue.Payload = text
	}
	return nil
}

func dropBlankLines(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, strings.TrimRight(line, " \t"))
		}
	}
	return strings.Join(kept, "\n")
}
