// Package schema defines the Avro schema and serde for offline catalog
// snapshots, stored as Avro object container files.
package schema

import (
	"errors"
	"fmt"
	"io"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"
)

var ErrEmptySnapshot = errors.New("snapshot holds no records")

// parse at init keeps a malformed schema a build-time concern.
var productSnapshotSchema = avro.MustParse(ProductSnapshotSchemaV1)

func MarshalProduct(v ProductSnapshotV1) ([]byte, error) {
	return avro.Marshal(productSnapshotSchema, v)
}

func UnmarshalProduct(data []byte, v *ProductSnapshotV1) error {
	return avro.Unmarshal(productSnapshotSchema, data, v)
}

// ReadSnapshot decodes a full Avro OCF snapshot stream.
func ReadSnapshot(r io.Reader) ([]ProductSnapshotV1, error) {
	const op = "schema.ReadSnapshot"

	dec, err := ocf.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var out []ProductSnapshotV1
	for dec.HasNext() {
		var v ProductSnapshotV1
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, v)
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySnapshot)
	}
	return out, nil
}

// WriteSnapshot encodes records into an Avro OCF snapshot stream.
func WriteSnapshot(w io.Writer, vs []ProductSnapshotV1) error {
	const op = "schema.WriteSnapshot"

	enc, err := ocf.NewEncoder(ProductSnapshotSchemaV1, w)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, v := range vs {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
