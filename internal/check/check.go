// Package check runs timing and consistency checks over a parsed document.
// The grammar accepts any well-formed cue; these checks flag cues that
// players tend to mishandle.
package check

import (
	"fmt"
	"time"

	"github.com/mgpai22/webvtt/webvtt"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Code identifies the kind of issue.
type Code string

const (
	CodeNoCues              Code = "no_cues"
	CodeEndBeforeStart      Code = "end_before_start"
	CodeZeroDuration        Code = "zero_duration"
	CodeOutOfOrder          Code = "out_of_order"
	CodeOverlap             Code = "overlap"
	CodeEmptyPayload        Code = "empty_payload"
	CodeShortDuration       Code = "short_duration"
	CodeLongDuration        Code = "long_duration"
	CodeDuplicateIdentifier Code = "duplicate_identifier"
)

// Issue is one finding. Cue is the zero-based cue index, or -1 for issues
// about the whole document.
type Issue struct {
	Cue      int      `json:"cue"`
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	if i.Cue < 0 {
		return fmt.Sprintf("%s: %s: %s", i.Severity, i.Code, i.Message)
	}
	return fmt.Sprintf("%s: cue %d: %s: %s", i.Severity, i.Cue+1, i.Code, i.Message)
}

// Options tunes the optional checks. Zero thresholds disable them.
type Options struct {
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AllowOverlap bool
}

// Run checks doc and returns its issues in cue order. An empty result
// means the document passed.
func Run(doc *webvtt.Document, opts Options) []Issue {
	issues := []Issue{}
	if len(doc.Cues) == 0 {
		return append(issues, Issue{
			Cue:      -1,
			Code:     CodeNoCues,
			Message:  "document has no cues",
			Severity: SeverityWarning,
		})
	}

	seen := make(map[string]int)
	for i, cue := range doc.Cues {
		add := func(code Code, severity Severity, format string, args ...any) {
			issues = append(issues, Issue{
				Cue:      i,
				Code:     code,
				Message:  fmt.Sprintf(format, args...),
				Severity: severity,
			})
		}

		start, end := cue.Start.Duration(), cue.End.Duration()
		duration := end - start
		switch {
		case end < start:
			add(CodeEndBeforeStart, SeverityError, "ends at %s before it starts at %s", cue.End, cue.Start)
		case end == start:
			add(CodeZeroDuration, SeverityWarning, "starts and ends at %s", cue.Start)
		default:
			if opts.MinDuration > 0 && duration < opts.MinDuration {
				add(CodeShortDuration, SeverityWarning, "lasts %v, less than %v", duration, opts.MinDuration)
			}
			if opts.MaxDuration > 0 && duration > opts.MaxDuration {
				add(CodeLongDuration, SeverityWarning, "lasts %v, more than %v", duration, opts.MaxDuration)
			}
		}

		if i > 0 {
			prev := doc.Cues[i-1]
			switch {
			case cue.Start < prev.Start:
				add(CodeOutOfOrder, SeverityWarning, "starts at %s, before the previous cue at %s", cue.Start, prev.Start)
			case !opts.AllowOverlap && cue.Start < prev.End:
				add(CodeOverlap, SeverityWarning, "starts at %s while the previous cue runs until %s", cue.Start, prev.End)
			}
		}

		if cue.Payload == "" {
			add(CodeEmptyPayload, SeverityWarning, "has no text")
		}

		if cue.Identifier != "" {
			if first, dup := seen[cue.Identifier]; dup {
				add(CodeDuplicateIdentifier, SeverityError, "identifier %q already used by cue %d", cue.Identifier, first+1)
			} else {
				seen[cue.Identifier] = i
			}
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
