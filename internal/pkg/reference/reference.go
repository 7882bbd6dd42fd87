// Package reference models optional foreign-key references that arrive from
// clients as "none", numeric strings or plain numbers.
package reference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a raw value cannot be read as a reference.
var ErrInvalid = errors.New("invalid reference")

// Ref is either Null or a positive numeric ID. The zero value is Null.
type Ref struct {
	id    int64
	valid bool
}

// Null returns the empty reference.
func Null() Ref {
	return Ref{}
}

// ID returns a reference to the given numeric ID.
func ID(id int64) Ref {
	return Ref{id: id, valid: true}
}

// FromPtr converts a nullable column value into a Ref.
func FromPtr(p *int64) Ref {
	if p == nil {
		return Null()
	}
	return ID(*p)
}

// IsNull reports whether the reference points at nothing.
func (r Ref) IsNull() bool {
	return !r.valid
}

// Int64 returns the referenced ID and whether one is set.
func (r Ref) Int64() (int64, bool) {
	return r.id, r.valid
}

// Ptr returns the ID as a pointer, nil for Null. Repositories store this value directly.
func (r Ref) Ptr() *int64 {
	if !r.valid {
		return nil
	}
	id := r.id
	return &id
}

func (r Ref) String() string {
	if !r.valid {
		return "none"
	}
	return strconv.FormatInt(r.id, 10)
}

// Normalize turns any client-supplied value into a Ref. It accepts nil, the
// strings "", "none" and "null", numeric strings and positive integral numbers.
func Normalize(raw interface{}) (Ref, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Ref:
		return v, nil
	case *int64:
		return FromPtr(v), nil
	case string:
		return Parse(v)
	case json.Number:
		return Parse(v.String())
	case int:
		return fromInt(int64(v))
	case int32:
		return fromInt(int64(v))
	case int64:
		return fromInt(v)
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 {
			return Null(), fmt.Errorf("%w: %v is not an integer id", ErrInvalid, v)
		}
		return fromInt(int64(v))
	default:
		return Null(), fmt.Errorf("%w: unsupported type %T", ErrInvalid, raw)
	}
}

// Parse reads a reference from its string form.
func Parse(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "null":
		return Null(), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Null(), fmt.Errorf("%w: %q is not a numeric id", ErrInvalid, s)
	}
	return fromInt(id)
}

func fromInt(id int64) (Ref, error) {
	if id <= 0 {
		return Null(), fmt.Errorf("%w: id must be positive, got %d", ErrInvalid, id)
	}
	return ID(id), nil
}

// MarshalJSON encodes Null as null and IDs as numbers.
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(r.id, 10)), nil
}

// UnmarshalJSON runs the raw JSON value through Normalize.
func (r *Ref) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	ref, err := Normalize(raw)
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

// Optional is a Ref that also remembers whether the key was present in the
// payload. Patches use it so that an explicit null clears a column while an
// absent key leaves it alone.
type Optional struct {
	Ref
	Set bool
}

// UnmarshalJSON marks the field as present before decoding.
func (o *Optional) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Ref.UnmarshalJSON(data)
}

// Patch returns nil when the key was absent, otherwise the decoded reference.
func (o Optional) Patch() *Ref {
	if !o.Set {
		return nil
	}
	r := o.Ref
	return &r
}
