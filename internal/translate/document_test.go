package translate

import (
	"reflect"
	"testing"

	"github.com/mgpai22/webvtt/webvtt"
)

const source = `WEBVTT

intro
00:00:01.000 --> 00:00:02.000 align:start
<i>Hello</i>

00:00:03.000 --> 00:00:04.000


00:00:05.000 --> 00:00:06.000
Good
bye`

func TestItemsFromDocument(t *testing.T) {
	doc, err := webvtt.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []TranslationItem{
		{Index: 0, Text: "<i>Hello</i>"},
		{Index: 2, Text: "Good\nbye"},
	}
	if got := ItemsFromDocument(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("ItemsFromDocument = %+v, want %+v", got, want)
	}
}

func TestApply(t *testing.T) {
	doc, err := webvtt.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	results := []TranslationResult{
		{Index: 0, Text: "<i>Hola</i>"},
		{Index: 2, Text: "Adi\n\nós  "},
	}
	if err := Apply(doc, results, false); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	want := `WEBVTT

intro
00:00:01.000 --> 00:00:02.000 align:start
<i>Hola</i>

00:00:03.000 --> 00:00:04.000


00:00:05.000 --> 00:00:06.000
Adi
ós`
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	reparsed, err := webvtt.Parse(doc.String())
	if err != nil {
		t.Fatalf("translated document does not parse: %v", err)
	}
	if len(reparsed.Cues) != 3 {
		t.Errorf("expected 3 cues after translation, got %d", len(reparsed.Cues))
	}
}

func TestApplyOverlay(t *testing.T) {
	doc, err := webvtt.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Apply(doc, []TranslationResult{{Index: 0, Text: "Hola"}, {Index: 1, Text: "   "}}, true); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got := doc.Cues[0].Payload; got != "Hola\n<i>Hello</i>" {
		t.Errorf("overlay payload = %q", got)
	}
	if got := doc.Cues[1].Payload; got != "" {
		t.Errorf("blank translation should leave the cue alone, got %q", got)
	}
}

func TestApplyRejectsBadIndex(t *testing.T) {
	doc, err := webvtt.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	before := doc.String()
	if err := Apply(doc, []TranslationResult{{Index: 0, Text: "x"}, {Index: 3, Text: "y"}}, false); err == nil {
		t.Fatal("expected error for out of range index")
	}
	if doc.String() != before {
		t.Error("document changed despite error")
	}
}
