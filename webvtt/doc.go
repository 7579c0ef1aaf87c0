// Package webvtt parses and formats WebVTT subtitle files.
//
// Parse turns text into a Document (header description, ordered metadata
// and cues); Format turns a Document back into canonical text. The same
// pair exists for each grammar level: ParseCue/Cue.String,
// ParseSettings/Settings.String and ParseTimestamp/Timestamp.String.
//
// Parsing is strict and all-or-nothing. The first problem found aborts the
// parse with a *ParseError whose Kind (ErrInvalidFormat, ErrInvalidHours,
// ErrInvalidSetting, ErrMissingHeader, ...) can be matched with errors.Is.
// Formatting never fails.
//
// Cue payloads are opaque: inline markup such as <i> or <v Speaker> is kept
// verbatim and never validated. The grammar does not check that cues are in
// chronological order or that a cue ends after it starts.
//
// All functions are pure and hold no state, so independent documents can
// be parsed and formatted concurrently. A Document itself is not safe for
// concurrent mutation.
package webvtt
