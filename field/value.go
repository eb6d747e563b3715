package field

import (
	"encoding/json"
	"fmt"
	"time"
)

// Value is one decoded field value. The set of implementations is closed:
// exactly one variant exists per supported column type, plus Null for blank
// field images. All variants are comparable and marshal to JSON.
type Value interface {
	// Type reports the column type the value was decoded from.
	Type() Type

	value()
}

// Character is a 'C' column value, trimmed of trailing padding.
type Character string

func (Character) Type() Type { return TypeCharacter }
func (Character) value()     {}

// MarshalJSON encodes the value as a JSON string.
func (c Character) MarshalJSON() ([]byte, error) { return json.Marshal(string(c)) }

// Numeric is an 'N' column value.
type Numeric float64

func (Numeric) Type() Type { return TypeNumeric }
func (Numeric) value()     {}

// MarshalJSON encodes the value as a JSON number.
func (n Numeric) MarshalJSON() ([]byte, error) { return json.Marshal(float64(n)) }

// Float is an 'F' column value. It shares the wire shape of Numeric but keeps
// its own identity so the declared column type survives decoding.
type Float float64

func (Float) Type() Type { return TypeFloat }
func (Float) value()     {}

// MarshalJSON encodes the value as a JSON number.
func (f Float) MarshalJSON() ([]byte, error) { return json.Marshal(float64(f)) }

// Date is a 'D' column value.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (Date) Type() Type { return TypeDate }
func (Date) value()     {}

// String returns the date in ISO form, e.g. "2024-07-01".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// Logical is an 'L' column value.
type Logical bool

func (Logical) Type() Type { return TypeLogical }
func (Logical) value()     {}

// MarshalJSON encodes the value as a JSON boolean.
func (l Logical) MarshalJSON() ([]byte, error) { return json.Marshal(bool(l)) }

// Memo is an 'M' column value: the block index into the companion memo file.
// The block content itself is never resolved.
type Memo uint32

func (Memo) Type() Type { return TypeMemo }
func (Memo) value()     {}

// MarshalJSON encodes the block index as a JSON number.
func (m Memo) MarshalJSON() ([]byte, error) { return json.Marshal(uint32(m)) }

// Null marks a field whose stored bytes were all blank. It remembers the type
// the column was declared as, so Null(TypeNumeric) and Null(TypeDate) compare
// unequal.
type Null Type

func (n Null) Type() Type { return Type(n) }
func (Null) value()       {}

// MarshalJSON encodes the value as JSON null.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// String returns e.g. "Null(Numeric)".
func (n Null) String() string { return fmt.Sprintf("Null(%s)", Type(n)) }
