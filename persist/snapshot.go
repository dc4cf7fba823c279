// Package persist stores a list's elements and logging flag in a structured file.
//
// A snapshot is a document with two fields: "log", the logging flag, and "data", the
// elements in traversal order. The file name is the destination name plus the codec's
// extension, so WriteFile("MyList", data, JSON) writes MyList.json.
package persist

import (
	"errors"
	"fmt"
	"os"
)

// Snapshot is the persisted form of a list.
type Snapshot[T any] struct {
	Log  bool `json:"log" yaml:"log"`
	Data []T  `json:"data" yaml:"data"`
}

// FileName returns the file a snapshot named name is stored in.
func FileName(name string, c Codec) string {
	if c == nil {
		c = JSON
	}
	return name + c.Extension()
}

// Encode renders the snapshot with c (JSON when nil). Data is never encoded as null.
func Encode[T any](snap Snapshot[T], c Codec) ([]byte, error) {
	if c == nil {
		c = JSON
	}
	if snap.Data == nil {
		snap.Data = []T{}
	}
	return c.Marshal(snap)
}

// WriteFile writes an already encoded snapshot to the file derived from name.
func WriteFile(name string, data []byte, c Codec) (string, error) {
	fn := FileName(name, c)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fn, fmt.Errorf("write %s: %w", fn, err)
	}
	return fn, nil
}

// Load reads the snapshot stored under name. A missing file yields an error wrapping
// os.ErrNotExist.
func Load[T any](name string, c Codec) (Snapshot[T], error) {
	if c == nil {
		c = JSON
	}
	fn := FileName(name, c)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot[T]{}, fmt.Errorf("snapshot %q: %w", fn, os.ErrNotExist)
		}
		return Snapshot[T]{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snap Snapshot[T]
	if err := c.Unmarshal(data, &snap); err != nil {
		return Snapshot[T]{}, fmt.Errorf("%s: %w", fn, err)
	}
	return snap, nil
}
