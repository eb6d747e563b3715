package field

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"
)

// Decode reads exactly d.Length bytes from r and interprets them as a value
// of d.Type. The bytes are consumed even when interpretation fails, so the
// caller's cursor stays aligned to the fixed-width record layout.
func Decode(r io.Reader, d Descriptor) (Value, error) {
	buf := make([]byte, int(d.Length))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return DecodeBytes(buf, d)
}

// DecodeBytes interprets an already-read field image. It does not retain b.
//
// A blank image (spaces/NULs, '*' number fill, '?' logical, zero date)
// decodes to Null carrying the declared type. Uninterpretable bytes yield a
// *DecodeError matching ErrInvalidData.
func DecodeBytes(b []byte, d Descriptor) (Value, error) {
	switch d.Type {
	case TypeCharacter:
		s := strings.TrimRight(string(b), " \x00")
		if s == "" {
			return Null(TypeCharacter), nil
		}
		return Character(s), nil

	case TypeNumeric, TypeFloat:
		s := trimBlank(b)
		if s == "" || allAsterisks(s) {
			return Null(d.Type), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &DecodeError{Type: d.Type, Data: bytes.Clone(b)}
		}
		if d.Type == TypeFloat {
			return Float(f), nil
		}
		return Numeric(f), nil

	case TypeDate:
		s := trimBlank(b)
		if s == "" || s == "00000000" {
			return Null(TypeDate), nil
		}
		v, ok := parseDate(s)
		if !ok {
			return nil, &DecodeError{Type: TypeDate, Data: bytes.Clone(b)}
		}
		return v, nil

	case TypeLogical:
		s := trimBlank(b)
		if s == "" || s == "?" {
			return Null(TypeLogical), nil
		}
		switch s[0] {
		case 'T', 't', 'Y', 'y':
			return Logical(true), nil
		case 'F', 'f', 'N', 'n':
			return Logical(false), nil
		}
		return nil, &DecodeError{Type: TypeLogical, Data: bytes.Clone(b)}

	case TypeMemo:
		s := trimBlank(b)
		if s == "" {
			return Null(TypeMemo), nil
		}
		idx, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, &DecodeError{Type: TypeMemo, Data: bytes.Clone(b)}
		}
		return Memo(idx), nil
	}

	return nil, &DecodeError{Type: d.Type, Data: bytes.Clone(b)}
}

func trimBlank(b []byte) string {
	return strings.Trim(string(b), " \x00")
}

// Uninitialized numeric fields are asterisk-filled in some writers.
func allAsterisks(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			return false
		}
	}
	return true
}

func parseDate(s string) (Date, bool) {
	if len(s) != 8 {
		return Date{}, false
	}
	for i := 0; i < 8; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Date{}, false
		}
	}
	y, _ := strconv.Atoi(s[:4])
	m, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	if m < 1 || m > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	return Date{Year: y, Month: time.Month(m), Day: day}, true
}
