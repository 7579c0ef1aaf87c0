package webvtt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a non-negative cue time with millisecond resolution.
type Timestamp time.Duration

// maxHours keeps the total within time.Duration after minutes and seconds
// are added.
const maxHours = uint64(math.MaxInt64/int64(time.Hour) - 1)

// NewTimestamp truncates d to whole milliseconds. Negative durations clamp
// to zero.
func NewTimestamp(d time.Duration) Timestamp {
	if d < 0 {
		return 0
	}
	return Timestamp(d.Truncate(time.Millisecond))
}

// Duration returns t as a time.Duration.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t)
}

// Milliseconds returns t in whole milliseconds.
func (t Timestamp) Milliseconds() int64 {
	if t < 0 {
		return 0
	}
	return time.Duration(t).Milliseconds()
}

// ParseTimestamp reads "H+:MM:SS[.mmm]" or "MM:SS[.mmm]".
//
// A fraction shorter than three digits is padded on the right, so "05.5"
// is 5.500 seconds.
func ParseTimestamp(s string) (Timestamp, error) {
	parts := strings.Split(s, ":")

	var hours uint64
	var minutePart, secondPart string
	switch len(parts) {
	case 3:
		h, ok := parseUnsigned(parts[0])
		if !ok || h > maxHours {
			return 0, newError(ErrInvalidHours, s)
		}
		hours = h
		minutePart, secondPart = parts[1], parts[2]
	case 2:
		minutePart, secondPart = parts[0], parts[1]
	default:
		return 0, newError(ErrInvalidFormat, s)
	}

	minutes, ok := parseUnsigned(minutePart)
	if !ok || minutes > 59 {
		return 0, newError(ErrInvalidMinutes, s)
	}

	wholePart, fracPart, hasFrac := strings.Cut(secondPart, ".")
	seconds, ok := parseUnsigned(wholePart)
	if !ok || seconds > 59 {
		return 0, newError(ErrInvalidSeconds, s)
	}

	var millis uint64
	if hasFrac {
		if len(fracPart) > 3 || !isDigits(fracPart) {
			return 0, newError(ErrInvalidMilliseconds, s)
		}
		fracPart += strings.Repeat("0", 3-len(fracPart))
		millis, _ = strconv.ParseUint(fracPart, 10, 64)
	}

	total := hours*3_600_000 + minutes*60_000 + seconds*1_000 + millis
	return Timestamp(time.Duration(total) * time.Millisecond), nil
}

func parseUnsigned(s string) (uint64, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String renders t as HH:MM:SS.mmm. Hours grow past two digits as needed.
func (t Timestamp) String() string {
	ms := t.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3_600_000,
		ms%3_600_000/60_000,
		ms%60_000/1_000,
		ms%1_000,
	)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
