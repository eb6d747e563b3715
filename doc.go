// Package dbfgo reads dBASE III (.dbf) table files.
//
// Tables are decoded as a forward-only stream: the fixed 32-byte header and
// the field descriptor table are parsed up front, records are decoded one at
// a time into name-keyed maps of typed values.
//
// # Quick Start
//
// Streaming:
//
//	r, _ := dbfgo.Open("customers.dbf")
//	defer r.Close()
//
//	for rec, err := range r.Records() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rec["NAME"], rec["BALANCE"])
//	}
//
// Eager:
//
//	records, _ := dbfgo.ReadFile("customers.dbf")
//
// Remote tables:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("tables/"))
//	r, _ := dbfgo.OpenStore(ctx, s3Store, "customers.dbf")
//
// # Field Values
//
// Each record maps field names to typed values from the field package:
// Character, Numeric, Float, Date, Logical and Memo, plus Null for blank
// cells. Records provide typed accessors:
//
//	name, ok := rec.Character("NAME")
//	balance, ok := rec.Numeric("BALANCE")
//
// # Deleted Rows
//
// dBASE deletes rows by flagging them, not by rewriting the file. By default
// every slot is yielded so the scan count matches the header's record count;
// WithSkipDeleted omits flagged rows and Deleted() reports their positions:
//
//	r, _ := dbfgo.Open("customers.dbf", dbfgo.WithSkipDeleted())
//
// # Compressed Tables
//
// Archived tables compressed with gzip, zstd or lz4 are detected by their
// magic bytes and decompressed transparently:
//
//	r, _ := dbfgo.Open("archive/2019.dbf.gz")
//
// # Batch Scans
//
// ReadTables scans many tables concurrently under a shared concurrency and
// IO budget:
//
//	tables, _ := dbfgo.ReadTables(ctx, store, names,
//	    dbfgo.WithMaxConcurrency(4),
//	    dbfgo.WithBytesPerSec(100<<20))
//
// # Export
//
// ExportJSONL re-encodes a table as JSON Lines, one record per line:
//
//	n, _ := dbfgo.ExportJSONL(os.Stdout, r)
//
// # Key Features
//
//   - Forward-only streaming with constant memory per record
//   - Typed field decoding with explicit Null handling
//   - Local, in-memory, S3, MinIO and caching table stores
//   - Transparent gzip/zstd/lz4 decompression
//   - Structured logging and pluggable metrics
package dbfgo
