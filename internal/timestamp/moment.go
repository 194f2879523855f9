package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Moment is a set of local calendar fields. Month is 1-12.
type Moment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromTime loads the calendar fields of t
func FromTime(t time.Time) Moment {
	return Moment{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

func (m Moment) validate() (err error) {
	if m.Month < 1 || m.Month > 12 {
		err = errors.Join(err, fmt.Errorf("month %d is out of range", m.Month))
	} else if days := daysIn(m.Year, m.Month); m.Day < 1 || m.Day > days {
		err = errors.Join(err, fmt.Errorf("day %d is out of range for a %d-day month", m.Day, days))
	}
	if m.Hour < 0 || m.Hour > 23 {
		err = errors.Join(err, fmt.Errorf("hour %d is out of range", m.Hour))
	}
	if m.Minute < 0 || m.Minute > 59 {
		err = errors.Join(err, fmt.Errorf("minute %d is out of range", m.Minute))
	}
	if m.Second < 0 || m.Second > 59 {
		err = errors.Join(err, fmt.Errorf("second %d is out of range", m.Second))
	}
	return err
}

// Time resolves the moment in loc (time.Local when nil). Times that fall
// into a daylight saving gap or overlap are normalized by time.Date.
func (m Moment) Time(loc *time.Location) (time.Time, error) {
	if err := m.validate(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDateTime, err)
	}
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, location(loc)), nil
}

// Encode the moment as markup
func Encode(m Moment, loc *time.Location) (string, error) {
	t, err := m.Time(loc)
	if err != nil {
		return "", err
	}
	return Format(t.Unix()), nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Scan reads "HH:MM:SS DD/MM/YYYY". Like scanf, the space may be any run of
// whitespace and anything after the year is ignored. A field that overflows
// int doesn't match.
func Scan(s string) (Moment, error) {
	const pattern = "%d:%d:%d %d/%d/%d"
	var fields [6]int
	seps := [...]byte{':', ':', ' ', '/', '/'}
	rest := s
	for i := range fields {
		n, next, ok := scanInt(rest, strconv.IntSize)
		if !ok {
			return Moment{}, fmt.Errorf("%w: %q matched %d of 6 fields in %q", ErrFormat, s, i, pattern)
		}
		fields[i] = int(n)
		rest = next
		if i == len(seps) {
			break
		}
		if seps[i] == ' ' {
			rest = strings.TrimLeft(rest, blanks)
			continue
		}
		if !strings.HasPrefix(rest, string(seps[i])) {
			return Moment{}, fmt.Errorf("%w: %q matched %d of 6 fields in %q", ErrFormat, s, i+1, pattern)
		}
		rest = rest[1:]
	}
	return Moment{
		Hour:   fields[0],
		Minute: fields[1],
		Second: fields[2],
		Day:    fields[3],
		Month:  fields[4],
		Year:   fields[5],
	}, nil
}
