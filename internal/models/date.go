package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. The zero value means "unset".
//
// Dates are stored at midnight UTC so that two Dates compare equal exactly
// when they name the same calendar day, whatever zone they were read from.
type Date struct {
	time.Time
}

// NewDate builds a Date from its parts
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate accepts either YYYY-MM-DD or an RFC 3339 timestamp. For
// timestamps the date is taken in the timestamp's own offset, so
// "2024-03-10T23:30:00-05:00" is March 10th.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals in tests and defaults
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns YYYY-MM-DD, or "" for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// AddDays returns the date n calendar days later (earlier when n < 0)
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// Equal reports whether both dates name the same day
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// DaysSince returns the signed number of calendar days from other to d
func (d Date) DaysSince(other Date) int {
	return int(d.Sub(other.Time).Hours() / 24)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null when unset
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", RFC 3339, "" and null
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
