package webvtt

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseSimpleCue(t *testing.T) {
	cue, err := ParseCue("00:01:02.000 --> 00:03:04.000\nHello, world!")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}

	if cue.Start.Duration() != 62*time.Second {
		t.Errorf("expected start 62s, got %v", cue.Start.Duration())
	}
	if cue.End.Duration() != 184*time.Second {
		t.Errorf("expected end 184s, got %v", cue.End.Duration())
	}
	if cue.Identifier != "" {
		t.Errorf("expected no identifier, got %q", cue.Identifier)
	}
	if cue.Settings != nil {
		t.Errorf("expected nil settings, got %+v", cue.Settings)
	}
	if cue.Payload != "Hello, world!" {
		t.Errorf("expected payload 'Hello, world!', got %q", cue.Payload)
	}
}

func TestParseCueWithSettings(t *testing.T) {
	cue, err := ParseCue("00:00:00.000 --> 00:00:05.000 line:90% position:50% align:middle\nSubtitle text")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.Settings == nil {
		t.Fatal("expected settings")
	}
	if !reflect.DeepEqual(cue.Settings.Line, ptr(PercentLine(90))) {
		t.Errorf("expected line 90%%, got %v", cue.Settings.Line)
	}
	if cue.Settings.Position == nil || *cue.Settings.Position != 50 {
		t.Errorf("expected position 50, got %v", cue.Settings.Position)
	}
	if cue.Settings.Align == nil || *cue.Settings.Align != AlignMiddle {
		t.Errorf("expected align middle, got %v", cue.Settings.Align)
	}
}

func TestParseCueWithIdentifier(t *testing.T) {
	cue, err := ParseCue("id1\n00:00:00.000 --> 00:00:05.000\nSubtitle text")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.Identifier != "id1" {
		t.Errorf("expected identifier 'id1', got %q", cue.Identifier)
	}
	if cue.Payload != "Subtitle text" {
		t.Errorf("expected payload 'Subtitle text', got %q", cue.Payload)
	}
}

func TestParseCuePayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"multi-line", "00:00.000 --> 00:01.000\nline one\nline two", "line one\nline two"},
		{"trimmed", "00:00.000 --> 00:01.000\n   padded  \n", "padded"},
		{"crlf", "00:00.000 --> 00:01.000\r\nfirst\r\nsecond\r\n", "first\nsecond"},
		{"empty", "00:00.000 --> 00:01.000", ""},
		{"markup kept", "00:00.000 --> 00:01.000\n<v Roger><i>Hi</i> & bye", "<v Roger><i>Hi</i> & bye"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, err := ParseCue(tt.input)
			if err != nil {
				t.Fatalf("ParseCue returned error: %v", err)
			}
			if cue.Payload != tt.want {
				t.Errorf("payload = %q, want %q", cue.Payload, tt.want)
			}
		})
	}
}

func TestParseCueTimingWhitespace(t *testing.T) {
	cue, err := ParseCue("  00:00:01.000-->00:00:02.000   align:end  \ntext")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.Start.Milliseconds() != 1000 || cue.End.Milliseconds() != 2000 {
		t.Errorf("unexpected timing %v --> %v", cue.Start, cue.End)
	}
	if cue.Settings == nil || cue.Settings.String() != "align:end" {
		t.Errorf("expected settings 'align:end', got %v", cue.Settings)
	}
}

func TestParseCueErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"empty", "", ErrInvalidFormat, 0},
		{"identifier only", "id1", ErrInvalidFormat, 1},
		{"identifier without timing", "id1\nnot a timing line", ErrInvalidFormat, 2},
		{"two separators", "00:00.000 --> 00:01.000 --> 00:02.000\ntext", ErrInvalidFormat, 1},
		{"missing end", "00:00.000 -->\ntext", ErrInvalidFormat, 1},
		{"bad start hours", "aa:00:00.000 --> 00:00:01.000", ErrInvalidHours, 1},
		{"bad end minutes", "00:00:00.000 --> 00:61:00.000", ErrInvalidMinutes, 1},
		{"bad seconds", "00:00:0x.000 --> 00:00:01.000", ErrInvalidSeconds, 1},
		{"bad millis", "id\n00:00:00.000 --> 00:00:01.0z0", ErrInvalidMilliseconds, 2},
		{"bad setting", "00:00:00.000 --> 00:00:01.000 foo:bar\ntext", ErrInvalidSetting, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCue(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseCue(%q) error = %v, want kind %v", tt.input, err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestCueString(t *testing.T) {
	cue := Cue{
		Start:   NewTimestamp(time.Second),
		End:     NewTimestamp(5 * time.Second),
		Payload: "Test",
	}
	if got, want := cue.String(), "00:00:01.000 --> 00:00:05.000\nTest"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	cue.Settings = &Settings{Align: ptr(AlignStart), Line: ptr(NumberLine(-1))}
	if got, want := cue.String(), "00:00:01.000 --> 00:00:05.000 line:-1 align:start\nTest"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	cue.Settings = &Settings{}
	cue.Payload = "  spaced out \n"
	if got, want := cue.String(), "00:00:01.000 --> 00:00:05.000\nspaced out"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCueRoundTrip(t *testing.T) {
	cue := Cue{
		Identifier: "id1",
		Start:      NewTimestamp(0),
		End:        NewTimestamp(5 * time.Second),
		Payload:    "Subtitle text",
	}

	text := cue.String()
	if want := "id1\n00:00:00.000 --> 00:00:05.000\nSubtitle text"; text != want {
		t.Fatalf("String() = %q, want %q", text, want)
	}

	parsed, err := ParseCue(text)
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if !reflect.DeepEqual(parsed, cue) {
		t.Errorf("round trip = %+v, want %+v", parsed, cue)
	}

	withSettings := cue
	withSettings.Settings = &Settings{Vertical: ptr(VerticalRightToLeft), Size: ptr(80)}
	withSettings.Payload = "two\nlines"
	parsed, err = ParseCue(withSettings.String())
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if !reflect.DeepEqual(parsed, withSettings) {
		t.Errorf("round trip = %+v, want %+v", parsed, withSettings)
	}
}

func TestParseCueAllowsEndBeforeStart(t *testing.T) {
	cue, err := ParseCue("00:00:05.000 --> 00:00:01.000\nbackwards")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.Start <= cue.End {
		t.Errorf("expected start after end to be preserved, got %v --> %v", cue.Start, cue.End)
	}
}
