package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/dbfgo"
)

func main() {
	dir, err := os.MkdirTemp("", "dbfgo-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "customers.dbf")
	if err := writeSampleTable(path); err != nil {
		log.Fatal(err)
	}

	metrics := &dbfgo.BasicMetricsCollector{}

	r, err := dbfgo.Open(path,
		dbfgo.WithLogger(dbfgo.NewTextLogger(slog.LevelInfo)),
		dbfgo.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	fmt.Println("--- Table ---")
	fmt.Println("Records:", r.Header().RecordCount)
	fmt.Println("Last update:", r.Header().LastUpdate.Format("2006-01-02"))
	for _, f := range r.Fields() {
		fmt.Println("Field:", f)
	}

	fmt.Println()
	fmt.Println("--- Stream ---")

	start := time.Now()

	for rec, err := range r.Records() {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("NAME=%v BALANCE=%v ACTIVE=%v\n", rec["NAME"], rec["BALANCE"], rec["ACTIVE"])
	}

	fmt.Println("Scan took:", time.Since(start))
	fmt.Println("Deleted rows:", r.Deleted().GetCardinality())

	fmt.Println()
	fmt.Println("--- Live rows only ---")

	records, err := dbfgo.ReadFile(path, dbfgo.WithSkipDeleted())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Live records:", len(records))

	fmt.Println()
	fmt.Println("--- Export ---")

	r2, err := dbfgo.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer r2.Close()

	n, err := dbfgo.ExportJSONL(os.Stdout, r2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Exported records:", n)

	fmt.Println()
	fmt.Println("--- Metrics ---")

	stats := metrics.GetStats()
	fmt.Printf("Opens: %d, Scans: %d, Scanned records: %d\n", stats.OpenCount, stats.ScanCount, stats.ScanRecords)
}

// writeSampleTable hand-assembles a tiny dBASE III table: four fields,
// three rows, the middle one flagged deleted.
func writeSampleTable(path string) error {
	fields := []struct {
		name             string
		typ              byte
		length, decimals byte
	}{
		{"NAME", 'C', 10, 0},
		{"BALANCE", 'N', 8, 2},
		{"SINCE", 'D', 8, 0},
		{"ACTIVE", 'L', 1, 0},
	}

	rows := [][]string{
		{"John", " 1234.56", "20190314", "T"},
		{"Bob", "  -10.00", "20200101", "F"},
		{"Jane", "", "", "?"},
	}

	recordLen := 1
	for _, f := range fields {
		recordLen += int(f.length)
	}
	headerLen := 32 + len(fields)*32 + 1

	var buf bytes.Buffer

	hdr := make([]byte, 32)
	hdr[0] = 0x03
	hdr[1], hdr[2], hdr[3] = 124, 6, 15
	binary.LittleEndian.PutUint32(hdr[4:], uint32(len(rows)))
	binary.LittleEndian.PutUint16(hdr[8:], uint16(headerLen))
	binary.LittleEndian.PutUint16(hdr[10:], uint16(recordLen))
	buf.Write(hdr)

	for _, f := range fields {
		desc := make([]byte, 32)
		copy(desc, f.name)
		desc[11] = f.typ
		desc[16] = f.length
		desc[17] = f.decimals
		buf.Write(desc)
	}
	buf.WriteByte(0x0D)

	for i, row := range rows {
		if i == 1 {
			buf.WriteByte('*')
		} else {
			buf.WriteByte(' ')
		}
		for j, cell := range row {
			buf.WriteString(cell)
			for pad := len(cell); pad < int(fields[j].length); pad++ {
				buf.WriteByte(' ')
			}
		}
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
