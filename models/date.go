// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used on the wire and in
// the database.
const DateLayout = "2006-01-02"

// Date is an optional calendar date without a time-of-day component.
//
// The zero value (Valid == false) represents "no date": it is marshalled to
// an empty JSON string and stored as SQL NULL.
type Date struct {
	time.Time
	Valid bool
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses s in [DateLayout]. An empty string yields an invalid Date
// and no error.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q is not in %s format: %w", s, DateLayout, err)
	}

	return NewDate(t), nil
}

// String returns the date in [DateLayout] or "" when not set.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Format(DateLayout)
}

// Equal reports whether both dates are unset or fall on the same day.
func (d Date) Equal(other Date) bool {
	if !d.Valid || !other.Valid {
		return d.Valid == other.Valid
	}
	return d.String() == other.String()
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. Both null and "" decode to an
// unset date.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan implements [sql.Scanner]. Drivers return DATE columns either as
// time.Time (pgx, sqlite3 with a DATE declared type) or as text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into models.Date", src)
	}
}

func (d *Date) scanString(s string) error {
	// sqlite may hand back a full timestamp for DATE columns
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements [driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String(), nil
}
