// Package field defines the column model of a dBASE table: descriptors as
// stored in the file's field descriptor table, and the typed values decoded
// from record bytes.
//
// # Descriptors
//
// Each column is described by a fixed 32-byte descriptor. ParseDescriptor
// decodes one descriptor image:
//
//	d, err := field.ParseDescriptor(buf)
//	// d.Name, d.Type, d.Length, d.Decimals
//
// # Values
//
// Value is a closed set of variants, one per supported column type, plus Null
// for blank field images:
//
//	Character  'C'  trimmed string
//	Numeric    'N'  float64
//	Float      'F'  float64
//	Date       'D'  calendar date
//	Logical    'L'  bool
//	Memo       'M'  memo block index
//	Null       any  blank image, remembers the declared type
//
// Decode reads and interprets exactly Descriptor.Length bytes, so the caller's
// cursor stays aligned to the record layout even when interpretation fails.
// All variants marshal to JSON (dates as "YYYY-MM-DD", Null as null).
package field
