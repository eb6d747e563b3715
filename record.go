package dbfgo

import (
	"github.com/hupe1980/dbfgo/field"
)

// Record is one decoded row, keyed by column name. The deletion-flag
// pseudo-field is consumed during assembly and never appears as a key.
type Record map[string]field.Value

// Character returns the named column as a string. ok is false when the
// column is absent, Null, or not a Character.
func (r Record) Character(name string) (string, bool) {
	v, ok := r[name].(field.Character)
	return string(v), ok
}

// Numeric returns the named column as a float64. ok is false when the column
// is absent, Null, or not a Numeric.
func (r Record) Numeric(name string) (float64, bool) {
	v, ok := r[name].(field.Numeric)
	return float64(v), ok
}

// Float returns the named column as a float64. ok is false when the column
// is absent, Null, or not a Float.
func (r Record) Float(name string) (float64, bool) {
	v, ok := r[name].(field.Float)
	return float64(v), ok
}

// Date returns the named column as a field.Date. ok is false when the column
// is absent, Null, or not a Date.
func (r Record) Date(name string) (field.Date, bool) {
	v, ok := r[name].(field.Date)
	return v, ok
}

// Logical returns the named column as a bool. ok is false when the column is
// absent, Null, or not a Logical.
func (r Record) Logical(name string) (bool, bool) {
	v, ok := r[name].(field.Logical)
	return bool(v), ok
}

// Memo returns the named column's memo block index. ok is false when the
// column is absent, Null, or not a Memo.
func (r Record) Memo(name string) (uint32, bool) {
	v, ok := r[name].(field.Memo)
	return uint32(v), ok
}

// IsNull reports whether the named column is present but blank.
func (r Record) IsNull(name string) bool {
	_, ok := r[name].(field.Null)
	return ok
}
