package dbfgo_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/hupe1980/dbfgo"
)

// exampleTable builds a one-column NAME C(10) table with two records.
func exampleTable() []byte {
	var buf bytes.Buffer

	hdr := make([]byte, 32)
	hdr[0] = 0x03
	hdr[1], hdr[2], hdr[3] = 124, 6, 15
	binary.LittleEndian.PutUint32(hdr[4:8], 2)    // record count
	binary.LittleEndian.PutUint16(hdr[8:10], 65)  // fixed header + one descriptor + terminator
	binary.LittleEndian.PutUint16(hdr[10:12], 11) // deletion flag + NAME
	buf.Write(hdr)

	desc := make([]byte, 32)
	copy(desc, "NAME")
	desc[11] = 'C'
	desc[16] = 10
	buf.Write(desc)
	buf.WriteByte(0x0D)

	buf.WriteString(" John      ")
	buf.WriteString(" Yoann     ")

	return buf.Bytes()
}

func ExampleNewReader() {
	r, err := dbfgo.NewReader(bytes.NewReader(exampleTable()))
	if err != nil {
		log.Fatal(err)
	}

	for rec, err := range r.Records() {
		if err != nil {
			log.Fatal(err)
		}

		name, _ := rec.Character("NAME")
		fmt.Println(name)
	}
	// Output:
	// John
	// Yoann
}

func ExampleRead() {
	records, err := dbfgo.Read(bytes.NewReader(exampleTable()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(records))
	// Output: 2
}

func ExampleReader_Fields() {
	r, err := dbfgo.NewReader(bytes.NewReader(exampleTable()))
	if err != nil {
		log.Fatal(err)
	}

	for _, d := range r.Fields() {
		fmt.Println(d)
	}
	// Output:
	// DeletionFlag C(1)
	// NAME C(10)
}

func ExampleExportJSONL() {
	r, err := dbfgo.NewReader(bytes.NewReader(exampleTable()))
	if err != nil {
		log.Fatal(err)
	}

	n, err := dbfgo.ExportJSONL(os.Stdout, r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(n, "records")
	// Output:
	// {"NAME":"John"}
	// {"NAME":"Yoann"}
	// 2 records
}
