package dbfgo

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/dbfgo/field"
)

const (
	// headerSize is the fixed on-disk size of the table header.
	headerSize = 32

	// fieldTerminator closes the field descriptor table.
	fieldTerminator = 0x0D
)

// Header is the decoded fixed-size table header.
type Header struct {
	// Version is the raw version byte (dBASE level plus memo/DOS flags).
	Version byte

	// LastUpdate is the last-modification date stamped by the writer, at
	// midnight UTC. Zero when the stamp bytes do not form a date.
	LastUpdate time.Time

	// RecordCount is the number of records the header declares.
	RecordCount uint32

	// HeaderLength is the offset of the first record: fixed header plus
	// descriptor table plus terminator.
	HeaderLength uint16

	// RecordLength is the declared per-record width, deletion flag included.
	RecordLength uint16

	// MDXFlag is set when a production .mdx index accompanies the table.
	MDXFlag byte

	// LanguageDriver is the code page marker. Bytes are surfaced untouched;
	// transcoding is up to the caller.
	LanguageDriver byte
}

// numFields derives the descriptor count from the header extent.
func (h Header) numFields() int {
	return int(h.HeaderLength-headerSize) / field.DescriptorSize
}

// decodeHeader reads and validates the 32-byte header.
//
// Layout (little-endian):
//
//	off 0      version
//	off 1..3   last update: year-1900, month, day
//	off 4..7   uint32 record count
//	off 8..9   uint16 header length
//	off 10..11 uint16 record length
//	off 28     production MDX flag
//	off 29     language driver
//
// The remaining bytes are reserved (transaction/encryption/multi-user) and
// ignored.
func decodeHeader(r io.Reader) (Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("dbf: read header: %w", err)
	}

	h := Header{
		Version:        buf[0],
		RecordCount:    binary.LittleEndian.Uint32(buf[4:8]),
		HeaderLength:   binary.LittleEndian.Uint16(buf[8:10]),
		RecordLength:   binary.LittleEndian.Uint16(buf[10:12]),
		MDXFlag:        buf[28],
		LanguageDriver: buf[29],
	}

	if m, d := buf[2], buf[3]; m >= 1 && m <= 12 && d >= 1 && d <= 31 {
		h.LastUpdate = time.Date(1900+int(buf[1]), time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
	}

	// The descriptor table extent must hold a whole number of 32-byte
	// descriptors plus the single terminator byte.
	if h.HeaderLength < headerSize+1 {
		return Header{}, fmt.Errorf("%w: header length %d", ErrMalformedHeader, h.HeaderLength)
	}
	if (h.HeaderLength-headerSize)%field.DescriptorSize != 1 {
		return Header{}, fmt.Errorf("%w: descriptor table extent %d", ErrMalformedHeader, h.HeaderLength-headerSize)
	}
	if h.RecordLength < 1 {
		return Header{}, fmt.Errorf("%w: record length 0", ErrMalformedHeader)
	}

	return h, nil
}
