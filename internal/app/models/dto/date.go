package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/intered/portal/internal/app/models"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date ("2024-09-01") or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// Ptr returns the date as a nullable time. A nil or zero Date yields nil.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// OptionalDate is a Date that also remembers whether the key was present, so
// that an explicit null in an update clears the column.
type OptionalDate struct {
	Date
	Set bool
}

// UnmarshalJSON marks the field as present before decoding.
func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Date.UnmarshalJSON(data)
}

// IsNull reports whether the key was sent as null.
func (o OptionalDate) IsNull() bool {
	return o.Set && o.Date.IsZero()
}

// Patch returns nil when the key was absent, otherwise the new column value.
func (o OptionalDate) Patch() *models.NullableDate {
	if !o.Set {
		return nil
	}
	return &models.NullableDate{Value: o.Date.Ptr()}
}
