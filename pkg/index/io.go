package index

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// IndexFileName is the name of the index manifest entry within an archive.
const IndexFileName = "index.json"

func ReadIndexSpec(filename string) (*IndexSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var spec IndexSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &spec, nil
}

func ReadArchiveSpec(filename string) (*ArchiveSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseArchiveSpec(data)
}

// ParseArchiveSpec unmarshals an ArchiveSpec from raw JSON.
func ParseArchiveSpec(data []byte) (*ArchiveSpec, error) {
	var spec ArchiveSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &spec, nil
}

// ReadArchiveSpecFrom unmarshals an ArchiveSpec from a reader, typically an
// index entry inside an archive.
func ReadArchiveSpecFrom(in io.Reader) (*ArchiveSpec, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseArchiveSpec(data)
}

func WriteJSONFile(filename string, spec interface{}) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
