package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDateTime is returned when calendar fields don't resolve to a
	// point in time.
	ErrInvalidDateTime = errors.New("timestamp: invalid date/time")
	// ErrParse is returned when markup doesn't carry a readable number.
	ErrParse = errors.New("timestamp: unable to parse number")
	// ErrFormat is returned when human input doesn't match the expected pattern.
	ErrFormat = errors.New("timestamp: invalid input format")
)

// Prefix that every markup timestamp starts with
const Prefix = "<t:"

// Style is the only style we ever produce (long date with day of week)
const Style = 'F'

// HumanLayout renders like "Monday, January 02, 2006 at 03:04:05 PM"
const HumanLayout = "Monday, January 02, 2006 at 03:04:05 PM"

// Format an epoch into markup (e.g. <t:1136214245:F>)
func Format(epoch int64) string {
	return fmt.Sprintf("<t:%d:%c>", epoch, Style)
}

// Markup is a parsed timestamp tag
type Markup struct {
	Epoch int64
	// Style is zero when the tag has no style (e.g. <t:123>)
	Style byte
}

// Time in the given location
func (m Markup) Time(loc *time.Location) time.Time {
	return time.Unix(m.Epoch, 0).In(location(loc))
}

// Parse markup like <t:1136214245:F>. The style is recorded but not checked.
func Parse(s string) (Markup, error) {
	if !strings.HasPrefix(s, Prefix) {
		return Markup{}, fmt.Errorf("%w: missing %q prefix in %q", ErrParse, Prefix, s)
	}
	epoch, rest, ok := scanInt(s[len(Prefix):], 64)
	if !ok {
		return Markup{}, fmt.Errorf("%w: no number after %q in %q", ErrParse, Prefix, s)
	}
	switch {
	case strings.HasPrefix(rest, ">"):
		return Markup{Epoch: epoch}, nil
	case strings.HasPrefix(rest, ":"):
		m := Markup{Epoch: epoch}
		if len(rest) >= 3 && rest[2] == '>' {
			m.Style = rest[1]
		}
		return m, nil
	default:
		return Markup{}, fmt.Errorf("%w: unexpected %q after number in %q", ErrParse, rest, s)
	}
}

// Render a time in the human readable layout
func Render(t time.Time) string {
	return t.Format(HumanLayout)
}

const blanks = " \t\n\v\f\r"

// scanInt reads a signed decimal the way strtoll and scanf's %d do: leading
// whitespace is skipped, a sign is optional and at least one digit is
// required. Values that don't fit in bitSize fail.
func scanInt(s string, bitSize int) (n int64, rest string, ok bool) {
	s = strings.TrimLeft(s, blanks)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, s, false
	}
	n, err := strconv.ParseInt(s[:end], 10, bitSize)
	if err != nil {
		return 0, s, false
	}
	return n, s[end:], true
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
