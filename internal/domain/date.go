package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the stored form of a calendar date.
	DateLayout = "2006-01-02"
	// legacyDateLayout matches JavaScript's Date.prototype.toDateString output.
	legacyDateLayout = "Mon Jan 02 2006"
)

// Date is a calendar day with no time component. The zero value means "none".
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf returns the calendar day of t in loc
func DateOf(t time.Time, loc *time.Location) Date {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// NewDate builds a Date from its parts, normalizing out-of-range values
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC), time.UTC)
}

// ParseDate parses the stored form, also accepting the legacy toDateString form
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{DateLayout, legacyDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t, time.UTC), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n days later
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Format renders the date with a Go time layout; empty for the zero date
func (d Date) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(layout)
}

// String returns the stored YYYY-MM-DD form
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalText encodes the date as YYYY-MM-DD, or empty for the zero date
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the forms ParseDate does; empty text is the zero date
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
