package types

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты на границе API (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Date is a calendar date without time-of-day and without time zone.
// Internally it is kept as midnight UTC so comparisons never drift across zones.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewDateFromString parses a YYYY-MM-DD string
func NewDateFromString(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return Date{t: t}, nil
}

// DateOf returns the calendar date of t as seen in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// AddDays returns the date n days later (n may be negative)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// IsBefore returns true if d is strictly before other
func (d Date) IsBefore(other Date) bool {
	return d.t.Before(other.t)
}

// IsZero returns true if the date was never set
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String returns the date in YYYY-MM-DD form
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalText реализует encoding.TextMarshaler (используется JSON и TOML)
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (d *Date) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := NewDateFromString(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
