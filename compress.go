package dbfgo

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Frame magics of the transparently supported encodings. Archived table
// dumps commonly ship as .dbf.gz, .dbf.zst or .dbf.lz4.
const (
	zstdMagic = 0xFD2FB528
	lz4Magic  = 0x184D2204
)

// wrapCompressed sniffs the leading bytes of src and, when a known
// compression frame is detected, interposes the matching decompressor. The
// returned closer (possibly nil) releases the decompressor only, never src.
// Undetected or too-short input passes through untouched.
func wrapCompressed(src io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(src)

	magic, _ := br.Peek(4)
	switch {
	case len(magic) >= 2 && magic[0] == 0x1F && magic[1] == 0x8B:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("dbf: gzip source: %w", err)
		}
		return zr, zr, nil

	case len(magic) >= 4 && binary.LittleEndian.Uint32(magic) == zstdMagic:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("dbf: zstd source: %w", err)
		}
		rc := zr.IOReadCloser()
		return rc, rc, nil

	case len(magic) >= 4 && binary.LittleEndian.Uint32(magic) == lz4Magic:
		// The lz4 frame reader holds no resources needing release.
		return lz4.NewReader(br), nil, nil
	}

	return br, nil, nil
}
