package webvtt

import (
	"strings"
)

const (
	fileMarker = "WEBVTT"
	noteMarker = "NOTE"
)

// Header is the first line's description plus the metadata block that
// follows it.
type Header struct {
	Description *string  `json:"description,omitempty"`
	Metadata    Metadata `json:"metadata"`
}

// Document is a parsed WebVTT file. Cues keep their source order.
type Document struct {
	Header Header `json:"header"`
	Cues   []Cue  `json:"cues"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Cues: []Cue{}}
}

// AddCue appends c.
func (d *Document) AddCue(c Cue) {
	d.Cues = append(d.Cues, c)
}

// AddMetadata sets a header metadata entry.
func (d *Document) AddMetadata(key, value string) {
	d.Header.Metadata.Set(key, value)
}

// SetDescription sets the text after WEBVTT on the first line.
func (d *Document) SetDescription(description string) {
	d.Header.Description = &description
}

// block is a run of non-blank lines; start is the 1-based input line of
// its first line.
type block struct {
	start int
	lines []string
}

// Parse reads a complete WebVTT file. Parsing stops at the first error;
// no partial document is returned.
func Parse(s string) (*Document, error) {
	lines := splitLines(strings.TrimPrefix(s, byteOrderMark))
	if len(lines) == 0 {
		return nil, &ParseError{Kind: ErrMissingHeader, Line: 1}
	}

	first := strings.TrimSpace(lines[0])
	rest, ok := strings.CutPrefix(first, fileMarker)
	if !ok {
		return nil, &ParseError{Kind: ErrMissingHeader, Fragment: first, Line: 1}
	}

	doc := NewDocument()
	if description := strings.TrimSpace(rest); description != "" {
		doc.SetDescription(description)
	}

	i := 1
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Kind: ErrInvalidMetadataLine, Fragment: line, Line: i + 1}
		}
		doc.AddMetadata(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	for _, b := range splitBlocks(lines[i:], i) {
		if isComment(b.lines) {
			continue
		}
		cue, err := parseCueLines(b.lines)
		if err != nil {
			return nil, shiftLine(atLine(err, 1), b.start-1)
		}
		doc.AddCue(cue)
	}
	return doc, nil
}

// splitBlocks groups lines separated by one or more blank lines. offset is
// the index of lines[0] in the whole input.
func splitBlocks(lines []string, offset int) []block {
	var blocks []block
	var current *block
	for i, line := range lines {
		if isBlank(line) {
			current = nil
			continue
		}
		if current == nil {
			blocks = append(blocks, block{start: offset + i + 1})
			current = &blocks[len(blocks)-1]
		}
		current.lines = append(current.lines, line)
	}
	return blocks
}

// isComment reports whether a block is a NOTE. A comment never contains
// "-->", so a block with a timing line is a cue even when its identifier
// starts with NOTE.
func isComment(lines []string) bool {
	rest, ok := strings.CutPrefix(lines[0], noteMarker)
	if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
		return false
	}
	for _, line := range lines {
		if strings.Contains(line, timingSeparator) {
			return false
		}
	}
	return true
}

// Format renders doc as WebVTT text.
func Format(doc *Document) string {
	return doc.String()
}

// String renders the document: header line, metadata in insertion order, a
// blank line, then cues separated by one blank line. There is no trailing
// newline after the last cue.
func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString(fileMarker)
	if d.Header.Description != nil {
		sb.WriteByte(' ')
		sb.WriteString(*d.Header.Description)
	}
	sb.WriteByte('\n')

	for key, value := range d.Header.Metadata.All() {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	for i, cue := range d.Cues {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(cue.String())
	}
	return sb.String()
}
