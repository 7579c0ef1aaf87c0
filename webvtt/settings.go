package webvtt

import (
	"strconv"
	"strings"
)

// Vertical is the writing direction of a vertical cue.
type Vertical string

const (
	VerticalRightToLeft Vertical = "rl"
	VerticalLeftToRight Vertical = "lr"
)

func parseVertical(s string) (Vertical, bool) {
	switch v := Vertical(s); v {
	case VerticalRightToLeft, VerticalLeftToRight:
		return v, true
	}
	return "", false
}

func (v Vertical) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *Vertical) UnmarshalText(text []byte) error {
	parsed, ok := parseVertical(string(text))
	if !ok {
		return newError(ErrInvalidSetting, "vertical:"+string(text))
	}
	*v = parsed
	return nil
}

// Align is the text alignment of a cue within its box.
type Align string

const (
	AlignStart  Align = "start"
	AlignMiddle Align = "middle"
	AlignEnd    Align = "end"
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
)

func parseAlign(s string) (Align, bool) {
	switch a := Align(s); a {
	case AlignStart, AlignMiddle, AlignEnd, AlignLeft, AlignRight:
		return a, true
	}
	return "", false
}

func (a Align) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

func (a *Align) UnmarshalText(text []byte) error {
	parsed, ok := parseAlign(string(text))
	if !ok {
		return newError(ErrInvalidSetting, "align:"+string(text))
	}
	*a = parsed
	return nil
}

// LineKind selects how a Line value is interpreted.
type LineKind int

const (
	LineAuto       LineKind = iota // "auto"
	LinePercentage                 // "N%", 0..100
	LineNumber                     // signed line number
)

// Line is the line position of a cue. The zero value is "auto".
type Line struct {
	Kind  LineKind
	Value int
}

// PercentLine returns a line position of n percent.
func PercentLine(n int) Line { return Line{Kind: LinePercentage, Value: n} }

// NumberLine returns a line position counted in lines; negative counts from
// the bottom.
func NumberLine(n int) Line { return Line{Kind: LineNumber, Value: n} }

// AutoLine returns the automatic line position.
func AutoLine() Line { return Line{Kind: LineAuto} }

func (l Line) String() string {
	switch l.Kind {
	case LinePercentage:
		return strconv.Itoa(l.Value) + "%"
	case LineNumber:
		return strconv.Itoa(l.Value)
	default:
		return "auto"
	}
}

func parseLine(s string) (Line, bool) {
	if s == "auto" {
		return AutoLine(), true
	}
	if strings.HasSuffix(s, "%") {
		n, ok := parsePercent(s)
		if !ok {
			return Line{}, false
		}
		return PercentLine(n), true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Line{}, false
	}
	return NumberLine(n), true
}

func (l Line) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Line) UnmarshalText(text []byte) error {
	parsed, ok := parseLine(string(text))
	if !ok {
		return newError(ErrInvalidSetting, "line:"+string(text))
	}
	*l = parsed
	return nil
}

// parsePercent reads "N%" with N an unsigned integer in [0,100].
func parsePercent(s string) (int, bool) {
	digits, ok := strings.CutSuffix(s, "%")
	if !ok || !isDigits(digits) || len(digits) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > 100 {
		return 0, false
	}
	return n, true
}

// Settings are the positioning options that follow a cue's timing. A nil
// field was not specified in the source text.
type Settings struct {
	Vertical *Vertical `json:"vertical,omitempty"`
	Line     *Line     `json:"line,omitempty"`
	Position *int      `json:"position,omitempty"`
	Size     *int      `json:"size,omitempty"`
	Align    *Align    `json:"align,omitempty"`
}

// IsZero reports whether no setting is specified.
func (s Settings) IsZero() bool {
	return s.Vertical == nil && s.Line == nil && s.Position == nil &&
		s.Size == nil && s.Align == nil
}

// ParseSettings reads a whitespace-separated list of key:value tokens.
// Unknown keys and malformed values are errors; a repeated key keeps its
// last value.
func ParseSettings(s string) (Settings, error) {
	var settings Settings
	for _, token := range strings.Fields(s) {
		key, value, ok := strings.Cut(token, ":")
		if !ok {
			return Settings{}, newError(ErrInvalidSetting, token)
		}

		switch key {
		case "vertical":
			v, ok := parseVertical(value)
			if !ok {
				return Settings{}, newError(ErrInvalidSetting, token)
			}
			settings.Vertical = &v
		case "line":
			l, ok := parseLine(value)
			if !ok {
				return Settings{}, newError(ErrInvalidSetting, token)
			}
			settings.Line = &l
		case "position":
			n, ok := parsePercent(value)
			if !ok {
				return Settings{}, newError(ErrInvalidSetting, token)
			}
			settings.Position = &n
		case "size":
			n, ok := parsePercent(value)
			if !ok {
				return Settings{}, newError(ErrInvalidSetting, token)
			}
			settings.Size = &n
		case "align":
			a, ok := parseAlign(value)
			if !ok {
				return Settings{}, newError(ErrInvalidSetting, token)
			}
			settings.Align = &a
		default:
			return Settings{}, newError(ErrInvalidSetting, token)
		}
	}
	return settings, nil
}

// String renders the specified settings in a fixed order: vertical, line,
// position, size, align.
func (s Settings) String() string {
	parts := make([]string, 0, 5)
	if s.Vertical != nil {
		parts = append(parts, "vertical:"+string(*s.Vertical))
	}
	if s.Line != nil {
		parts = append(parts, "line:"+s.Line.String())
	}
	if s.Position != nil {
		parts = append(parts, "position:"+strconv.Itoa(*s.Position)+"%")
	}
	if s.Size != nil {
		parts = append(parts, "size:"+strconv.Itoa(*s.Size)+"%")
	}
	if s.Align != nil {
		parts = append(parts, "align:"+string(*s.Align))
	}
	return strings.Join(parts, " ")
}
