package models

import (
	"bytes"
	"encoding/json"
)

// Nullable is a PATCH-style request field that tells an absent key
// (Set=false) apart from an explicit null (Set=true, Valid=false). Plain
// pointers collapse both cases to nil.
//
// Values whose type has an IsZero method and decode to zero, such as an
// empty date string, count as null.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// NullableString clears a text field when sent as null
type NullableString = Nullable[string]

// NullableDate clears a calendar date when sent as null or ""
type NullableDate = Nullable[Date]

var jsonNull = []byte("null")

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	var v T
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		n.Value, n.Valid = v, false
		return nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	n.Value, n.Valid = v, true
	if z, ok := any(v).(interface{ IsZero() bool }); ok && z.IsZero() {
		n.Valid = false
	}
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// ToPtr returns nil for null, else a pointer to a copy of the value
func (n Nullable[T]) ToPtr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// OrZero returns the value, or T's zero value for null
func (n Nullable[T]) OrZero() T {
	if !n.Valid {
		var zero T
		return zero
	}
	return n.Value
}
