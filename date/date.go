// Package date provides a day-granularity Date and a sorted History of
// dated values, the building blocks for balance series.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation of a Date, ISO-8601.
const Format = "2006-01-02"

// readFormat is more permissive than Format and accepts "2025-7-1".
const readFormat = "2006-1-2"

// Date represents a calendar day, with no time-of-day component.
type Date struct {
	t time.Time // midnight UTC of that day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Parse parses a Date from a string. It is lenient about zero padding.
func Parse(str string) (Date, error) {
	t, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// String formats the date in its canonical form.
func (d Date) String() string { return d.t.Format(Format) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.t.Before(x.t) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.t.After(x.t) }

// Compare returns -1, 0 or +1 ordering d against x.
func (d Date) Compare(x Date) int { return d.t.Compare(x.t) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date {
	y, m, dd := d.t.Date()
	return New(y, m, dd+days)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// UnmarshalJSON decodes a Date from a JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the Date as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)
