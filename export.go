package dbfgo

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hupe1980/dbfgo/codec"
)

// ExportOptions configures ExportJSONL.
type ExportOptions struct {
	// Codec encodes each record. Defaults to codec.Default.
	Codec codec.Codec
}

// WithExportCodec sets the record encoder.
func WithExportCodec(c codec.Codec) func(*ExportOptions) {
	return func(o *ExportOptions) {
		o.Codec = c
	}
}

// appender is implemented by codecs that can encode into a reused buffer.
type appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

// ExportJSONL writes r's remaining records to w as JSON Lines, one record
// per line, and returns the number of lines written. Deleted rows follow
// the reader's options: with WithSkipDeleted they are omitted from the
// output.
func ExportJSONL(w io.Writer, r *Reader, optFns ...func(*ExportOptions)) (int, error) {
	opts := ExportOptions{Codec: codec.Default}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	n, err := exportJSONL(w, r, opts.Codec)
	r.logger.LogExport(n, opts.Codec.Name(), err)

	return n, err
}

func exportJSONL(w io.Writer, r *Reader, c codec.Codec) (n int, err error) {
	bw := bufio.NewWriter(w)
	// Lines counted in n are flushed to w even when a later record fails.
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("dbf: flush export: %w", ferr)
		}
	}()

	app, canAppend := c.(appender)

	var buf []byte
	for rec, rerr := range r.Records() {
		if rerr != nil {
			return n, rerr
		}

		if canAppend {
			buf, err = app.Append(buf[:0], rec)
		} else {
			buf, err = c.Marshal(rec)
		}
		if err != nil {
			return n, fmt.Errorf("dbf: encode record %d: %w", n, err)
		}

		buf = append(buf, '\n')
		if _, werr := bw.Write(buf); werr != nil {
			return n, fmt.Errorf("dbf: write record %d: %w", n, werr)
		}
		n++
	}

	return n, nil
}
