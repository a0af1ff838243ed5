package models

import (
	"bytes"
	"encoding/json"
)

// Opt carries a value together with explicit presence information for
// partial updates. A field absent from the request body has Set == false
// and leaves the column unchanged. An explicit JSON null has Set == true
// and Valid == false, which clears a nullable column. This keeps "clear
// this field" distinguishable from "field not supplied".
type Opt[T any] struct {
	Set   bool // true when the field appeared in the request body
	Valid bool // true when the supplied value was not null
	Value T
}

// NewOpt returns a present, non-null Opt.
func NewOpt[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Valid: true, Value: v}
}

// NullOpt returns a present, explicitly-null Opt.
func NullOpt[T any]() Opt[T] {
	return Opt[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the body, so Set is
// true exactly when the caller supplied the field.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON renders null for absent or explicitly-null values.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
