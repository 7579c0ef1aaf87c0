package webvtt

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON encodes doc as JSON. Timestamps and line positions are
// written in their canonical WebVTT text form. Payload markup is not
// HTML-escaped.
func MarshalJSON(doc *Document, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a document produced by MarshalJSON. Every value is
// checked by the same grammar as Parse, so the same error kinds apply.
func UnmarshalJSON(data []byte) (*Document, error) {
	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	if doc.Cues == nil {
		doc.Cues = []Cue{}
	}
	return doc, nil
}

func (c *Cue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Identifier string     `json:"identifier"`
		Start      *Timestamp `json:"start"`
		End        *Timestamp `json:"end"`
		Settings   *Settings  `json:"settings"`
		Payload    string     `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Start == nil {
		return newError(ErrInvalidFormat, "missing start")
	}
	if raw.End == nil {
		return newError(ErrInvalidFormat, "missing end")
	}
	*c = Cue{
		Identifier: raw.Identifier,
		Start:      *raw.Start,
		End:        *raw.End,
		Settings:   raw.Settings,
		Payload:    raw.Payload,
	}
	return nil
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if p := decoded.Position; p != nil && !inPercentRange(*p) {
		return newError(ErrInvalidSetting, "position:"+strconv.Itoa(*p)+"%")
	}
	if p := decoded.Size; p != nil && !inPercentRange(*p) {
		return newError(ErrInvalidSetting, "size:"+strconv.Itoa(*p)+"%")
	}
	*s = Settings(decoded)
	return nil
}

func inPercentRange(n int) bool {
	return n >= 0 && n <= 100
}
