// Command snapshotgen converts a JSON product dump into the Avro
// snapshot bundled with the storefront for offline fallback.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/glowmart/storefront/pkg/schema"
)

func main() {
	in := pflag.String("in", "products.json", "JSON product dump")
	out := pflag.String("out", "snapshot.avro", "Avro snapshot output")
	pflag.Parse()

	printStart(*in, *out)
	defer printComplete(time.Now())

	records, err := readDump(*in)
	if err != nil {
		printFail(err)
		return
	}

	if err := writeSnapshot(*out, records); err != nil {
		printFail(err)
		return
	}

	fmt.Printf("encoded %d products\n", len(records))
}

func readDump(path string) ([]schema.ProductSnapshotV1, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []schema.ProductSnapshotV1
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func writeSnapshot(path string, records []schema.ProductSnapshotV1) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return schema.WriteSnapshot(f, records)
}

func printStart(in, out string) {
	fmt.Printf("generating snapshot: %s -> %s\n", in, out)
}

func printComplete(start time.Time) {
	fmt.Printf("done in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed: %v\n", err)
	os.Exit(1)
}
