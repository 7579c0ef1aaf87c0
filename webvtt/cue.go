package webvtt

import (
	"strings"
)

const timingSeparator = "-->"

// Cue is one subtitle entry.
type Cue struct {
	// Identifier is the optional line before the timing line. Empty means
	// the cue has none. It must be a single line, must not be only
	// whitespace and must not contain "-->"; otherwise the formatted cue
	// does not parse back to the same value.
	Identifier string    `json:"identifier,omitempty"`
	Start      Timestamp `json:"start"`
	End        Timestamp `json:"end"`
	Settings   *Settings `json:"settings,omitempty"`
	// Payload is the cue text. Lines are separated by "\n" and none may be
	// blank, since a blank line ends the cue.
	Payload    string    `json:"payload"`
}

// ParseCue reads a single cue block: an optional identifier line, the
// timing line, then payload lines. Line numbers in returned errors count
// from the first line of s.
func ParseCue(s string) (Cue, error) {
	return parseCueLines(splitLines(s))
}

func parseCueLines(lines []string) (Cue, error) {
	i := 0
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	if i == len(lines) {
		return Cue{}, newError(ErrInvalidFormat, "")
	}

	var cue Cue
	if !strings.Contains(lines[i], timingSeparator) {
		cue.Identifier = lines[i]
		i++
		if i == len(lines) {
			return Cue{}, &ParseError{Kind: ErrInvalidFormat, Fragment: cue.Identifier, Line: i}
		}
	}

	if err := cue.parseTiming(lines[i]); err != nil {
		return Cue{}, atLine(err, i+1)
	}

	cue.Payload = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
	return cue, nil
}

func (c *Cue) parseTiming(line string) error {
	parts := strings.Split(line, timingSeparator)
	if len(parts) != 2 {
		return newError(ErrInvalidFormat, line)
	}

	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return err
	}

	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return newError(ErrInvalidFormat, line)
	}
	end, err := ParseTimestamp(fields[0])
	if err != nil {
		return err
	}

	c.Start, c.End = start, end
	if rest := strings.Join(fields[1:], " "); rest != "" {
		settings, err := ParseSettings(rest)
		if err != nil {
			return err
		}
		c.Settings = &settings
	}
	return nil
}

// String renders the cue block without a trailing newline.
func (c Cue) String() string {
	var sb strings.Builder
	if c.Identifier != "" {
		sb.WriteString(c.Identifier)
		sb.WriteByte('\n')
	}
	sb.WriteString(c.Start.String())
	sb.WriteString(" --> ")
	sb.WriteString(c.End.String())
	if c.Settings != nil && !c.Settings.IsZero() {
		sb.WriteByte(' ')
		sb.WriteString(c.Settings.String())
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.TrimSpace(c.Payload))
	return sb.String()
}
