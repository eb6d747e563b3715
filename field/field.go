package field

import (
	"bytes"
	"fmt"
)

// DescriptorSize is the on-disk size of one field descriptor.
const DescriptorSize = 32

// Type identifies a column type by its descriptor tag byte.
type Type byte

// Supported column types.
const (
	TypeCharacter Type = 'C'
	TypeNumeric   Type = 'N'
	TypeFloat     Type = 'F'
	TypeDate      Type = 'D'
	TypeLogical   Type = 'L'
	TypeMemo      Type = 'M'
)

// String returns a human-readable name for the type.
func (t Type) String() string {
	switch t {
	case TypeCharacter:
		return "Character"
	case TypeNumeric:
		return "Numeric"
	case TypeFloat:
		return "Float"
	case TypeDate:
		return "Date"
	case TypeLogical:
		return "Logical"
	case TypeMemo:
		return "Memo"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", byte(t))
	}
}

func validType(t Type) bool {
	switch t {
	case TypeCharacter, TypeNumeric, TypeFloat, TypeDate, TypeLogical, TypeMemo:
		return true
	default:
		return false
	}
}

// Descriptor describes one column of a table.
type Descriptor struct {
	// Name is the column name, trimmed of NUL padding.
	Name string
	// Type is the column type tag.
	Type Type
	// Length is the fixed width of the field in record bytes.
	Length uint8
	// Decimals is the declared decimal count for Numeric/Float columns.
	Decimals uint8
}

// String returns the descriptor in schema notation, e.g. "NAME C(10)".
func (d Descriptor) String() string {
	if d.Type == TypeNumeric || d.Type == TypeFloat {
		return fmt.Sprintf("%s %c(%d,%d)", d.Name, byte(d.Type), d.Length, d.Decimals)
	}
	return fmt.Sprintf("%s %c(%d)", d.Name, byte(d.Type), d.Length)
}

// ParseDescriptor decodes one 32-byte descriptor image from the field
// descriptor table.
//
// Layout (little-endian file, all single bytes here):
//
//	off 0..10  name, NUL-padded
//	off 11     type tag
//	off 16     field length
//	off 17     decimal count
//
// The remaining bytes are reserved and ignored. A blank name or an unknown
// type tag yields an error wrapping ErrInvalidDescriptor.
func ParseDescriptor(b []byte) (Descriptor, error) {
	if len(b) != DescriptorSize {
		return Descriptor{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidDescriptor, len(b), DescriptorSize)
	}

	name := b[:11]
	if i := bytes.IndexByte(name, 0x00); i >= 0 {
		name = name[:i]
	}
	name = bytes.TrimRight(name, " ")
	if len(name) == 0 {
		return Descriptor{}, fmt.Errorf("%w: blank name", ErrInvalidDescriptor)
	}

	t := Type(b[11])
	if !validType(t) {
		return Descriptor{}, fmt.Errorf("%w: unknown type tag 0x%02X", ErrInvalidDescriptor, b[11])
	}

	return Descriptor{
		Name:     string(name),
		Type:     t,
		Length:   b[16],
		Decimals: b[17],
	}, nil
}
