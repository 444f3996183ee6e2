// file: internals/helpers/field/field.go
package field

import "encoding/json"

// Field membedakan "key tidak dikirim" vs "key dikirim null" vs "key dikirim
// dengan nilai" pada payload partial-update. Pointer saja tidak cukup: null
// bisa jadi nilai sah (mis. hapus end date), bukan sekadar "jangan ubah".
type Field[T any] struct {
	Present bool // key ada di payload
	Valid   bool // nilai bukan null
	Value   T
}

func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Valid: true, Value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// Get mengembalikan nilai hanya jika key dikirim dan bukan null.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Present && f.Valid
}

// IsNull: key dikirim dengan nilai null eksplisit.
func (f Field[T]) IsNull() bool {
	return f.Present && !f.Valid
}

// Ptr: nil kalau absent/null, selain itu pointer ke nilai.
func (f Field[T]) Ptr() *T {
	if f.Present && f.Valid {
		v := f.Value
		return &v
	}
	return nil
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
