package dbfgo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/dbfgo/blobstore"
	"github.com/hupe1980/dbfgo/field"
)

const (
	// deletionFlagName names the synthetic pseudo-field prepended to the
	// descriptor table. It accounts for the per-record deletion flag byte
	// and is never a record key.
	deletionFlagName = "DeletionFlag"

	// deletedMark is the deletion flag value of a deleted record; live
	// records carry a space.
	deletedMark = '*'
)

// Reader decodes records from a table source, front to back.
//
// A Reader is stateful and single-goroutine: it owns its source exclusively
// while iterating and performs no internal locking. Construction parses the
// header and the field descriptor table immediately; Read then yields one
// record per call in on-disk order.
type Reader struct {
	br      *bufio.Reader
	closers []io.Closer

	header Header
	fields []field.Descriptor

	scratch []byte
	row     uint32
	deleted *roaring.Bitmap
	err     error

	skipDeleted bool
	logger      *Logger
	metrics     MetricsCollector
}

// NewReader decodes the table header and field descriptor table from r and
// returns a Reader positioned at the first record.
//
// Sources compressed with gzip, zstd or lz4 are detected by their frame
// magic and decompressed transparently. r itself is never closed by the
// Reader; Close releases only wrappers the Reader created.
func NewReader(r io.Reader, optFns ...Option) (*Reader, error) {
	o := applyOptions(optFns)

	start := time.Now()
	rd, err := newReader(r, nil, "", o)
	o.metricsCollector.RecordOpen(time.Since(start), err)

	return rd, err
}

// Open opens the table file at path. Close releases the file.
func Open(path string, optFns ...Option) (*Reader, error) {
	o := applyOptions(optFns)

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("dbf: open %s: %w", path, err)
		o.metricsCollector.RecordOpen(time.Since(start), err)
		o.logger.LogOpen(path, 0, 0, err)
		return nil, err
	}

	rd, err := newReader(f, []io.Closer{f}, path, o)
	o.metricsCollector.RecordOpen(time.Since(start), err)

	return rd, err
}

// OpenStore opens the named table from a blob store. Close releases the
// store blob.
func OpenStore(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Reader, error) {
	o := applyOptions(optFns)

	start := time.Now()
	rc, err := store.Open(ctx, name)
	if err != nil {
		err = fmt.Errorf("dbf: open %s: %w", name, err)
		o.metricsCollector.RecordOpen(time.Since(start), err)
		o.logger.LogOpen(name, 0, 0, err)
		return nil, err
	}

	rd, err := newReader(rc, []io.Closer{rc}, name, o)
	o.metricsCollector.RecordOpen(time.Since(start), err)

	return rd, err
}

// newReader owns the passed closers: on construction failure they are
// released before returning.
func newReader(src io.Reader, closers []io.Closer, name string, o options) (_ *Reader, err error) {
	var (
		hdr       Header
		numFields int
	)
	defer func() {
		if err != nil {
			closeAll(closers)
		}
		o.logger.LogOpen(name, hdr.RecordCount, numFields, err)
	}()

	plain, closer, err := wrapCompressed(src)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		closers = append(closers, closer)
	}

	br := bufio.NewReaderSize(plain, 64<<10)

	hdr, err = decodeHeader(br)
	if err != nil {
		return nil, err
	}

	numFields = hdr.numFields()
	fields := make([]field.Descriptor, 0, numFields+1)
	fields = append(fields, field.Descriptor{Name: deletionFlagName, Type: field.TypeCharacter, Length: 1})

	buf := make([]byte, field.DescriptorSize)
	for i := 0; i < numFields; i++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("dbf: read field descriptor %d: %w", i, unexpectedEOF(err))
		}
		d, err := field.ParseDescriptor(buf)
		if err != nil {
			return nil, fmt.Errorf("dbf: field descriptor %d: %w", i, err)
		}
		fields = append(fields, d)
	}

	term, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("dbf: read descriptor terminator: %w", unexpectedEOF(err))
	}
	if term != fieldTerminator {
		return nil, fmt.Errorf("%w: got 0x%02X", ErrUnexpectedTerminator, term)
	}

	maxLen := 0
	for _, d := range fields[1:] {
		if int(d.Length) > maxLen {
			maxLen = int(d.Length)
		}
	}

	return &Reader{
		br:          br,
		closers:     closers,
		header:      hdr,
		fields:      fields,
		scratch:     make([]byte, maxLen),
		deleted:     roaring.New(),
		skipDeleted: o.skipDeleted,
		logger:      o.logger,
		metrics:     o.metricsCollector,
	}, nil
}

// Header returns the decoded table header.
func (r *Reader) Header() Header { return r.header }

// Fields returns the descriptor table: the synthetic deletion-flag
// pseudo-field first, then one descriptor per on-disk column. The slice is
// shared; treat it as read-only.
func (r *Reader) Fields() []field.Descriptor { return r.fields }

// Deleted returns the rows flagged as deleted among those scanned so far, as
// 0-based record numbers. The bitmap is live and grows as Read advances;
// treat it as read-only.
func (r *Reader) Deleted() *roaring.Bitmap { return r.deleted }

// Read returns the next record in on-disk order.
//
// It returns io.EOF once the header's declared record count has been
// consumed, and keeps returning io.EOF on every later call. Any other error
// is sticky: the source can no longer be trusted to sit on a record
// boundary, so subsequent calls return the same error.
func (r *Reader) Read() (Record, error) {
	start := time.Now()
	rec, err := r.read()
	if err != io.EOF {
		r.metrics.RecordRead(time.Since(start), err)
	}

	return rec, err
}

func (r *Reader) read() (Record, error) {
	if r.err != nil {
		return nil, r.err
	}

	for r.row < r.header.RecordCount {
		rec, deleted, err := r.readRecord()
		if err != nil {
			r.err = err
			r.logger.LogRead(r.row, err)
			return nil, err
		}

		row := r.row
		r.row++

		if deleted {
			r.deleted.Add(row)
			if r.skipDeleted {
				continue
			}
		}
		return rec, nil
	}

	r.err = io.EOF

	return nil, io.EOF
}

// readRecord decodes one fixed-width record: the deletion flag byte, then
// one value per descriptor. Field bytes are consumed even when a value does
// not decode, keeping the cursor aligned for the error message position.
func (r *Reader) readRecord() (Record, bool, error) {
	flag, err := r.br.ReadByte()
	if err != nil {
		return nil, false, fmt.Errorf("dbf: record %d: read deletion flag: %w", r.row, unexpectedEOF(err))
	}

	rec := make(Record, len(r.fields)-1)
	for _, d := range r.fields[1:] {
		buf := r.scratch[:int(d.Length)]
		if _, err := io.ReadFull(r.br, buf); err != nil {
			return nil, false, fmt.Errorf("dbf: record %d: field %q: %w", r.row, d.Name, unexpectedEOF(err))
		}

		v, err := field.DecodeBytes(buf, d)
		if err != nil {
			return nil, false, fmt.Errorf("dbf: record %d: field %q: %w", r.row, d.Name, err)
		}

		rec[d.Name] = v
	}

	return rec, flag == deletedMark, nil
}

// Records returns an iterator over the remaining records for memory-efficient
// streaming. Records are yielded in on-disk order; iteration ends after the
// declared count, or after yielding one terminal error. Breaking out of the
// loop early is supported.
//
// Example:
//
//	for rec, err := range r.Records() {
//	    if err != nil {
//	        return err
//	    }
//	    process(rec)
//	}
func (r *Reader) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// ReadAll drains the remaining records eagerly. The first decode failure
// aborts the drain and is returned.
func (r *Reader) ReadAll() ([]Record, error) {
	start := time.Now()
	records, err := r.readAll()
	r.metrics.RecordScan(len(records), time.Since(start), err)
	r.logger.LogScan(len(records), err)

	return records, err
}

func (r *Reader) readAll() ([]Record, error) {
	records := make([]Record, 0, r.header.RecordCount)
	for {
		rec, err := r.read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// unexpectedEOF converts a bare io.EOF into io.ErrUnexpectedEOF. A source
// that ends inside a structure is truncated, not exhausted.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
