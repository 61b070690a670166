package models

import "encoding/json"

// Optional tracks whether a JSON field was present in a PATCH body.
// An absent field leaves the stored value untouched; an explicit null
// clears a nullable column. A plain pointer cannot tell the two apart.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns nil for an explicit null, for binding nullable columns.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	return &o.Value
}
