// Package calendar contains the date and season primitives for care
// scheduling. This is part of the Functional Core - no I/O, only pure
// functions.
//
// All scheduling math runs on UTC calendar days. Timestamps are truncated
// to their UTC date before any comparison; mixing local-time days into a
// comparison shifts season and priority boundaries by the UTC offset.
package calendar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day (year, month, day) with no time-of-day and no
// timezone. The zero Date means "not set".
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a timestamp to its UTC calendar day.
func FromTime(t time.Time) Date {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// ParseDate parses a strict YYYY-MM-DD string. Zero-padded fields are
// required and the date must exist on the calendar (2025-02-30 is
// rejected, not normalized).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	// time.Parse is lenient about field widths; round-tripping catches
	// unpadded input like 2025-2-3.
	if t.Format(dateLayout) != s {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return FromTime(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Month returns the month of the date.
func (d Date) Month() time.Month {
	return d.t.Month()
}

// Time returns the date as a time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date as YYYY-MM-DD. The zero Date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MinDate returns the earlier of the non-zero inputs, or the zero Date
// when both are unset.
func MinDate(a, b Date) Date {
	switch {
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	case b.Before(a):
		return b
	default:
		return a
	}
}
