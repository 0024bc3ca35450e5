package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// MustWriteArchive writes a zip archive containing the given entries under
// dir and returns its path.  Entries map archive member names to contents.
func MustWriteArchive(t *testing.T, dir, name string, entries map[string]string) string {
	filename := filepath.Join(dir, name)
	f, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for entry, content := range entries {
		zf, err := w.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := zf.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return filename
}

// MustWriteFile writes content to a file under dir and returns its path.
func MustWriteFile(t *testing.T, dir, name, content string) string {
	filename := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filename, []byte(content), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	return filename
}

// EqualError reports whether errors a and b are considered equal.
// They're equal if both are nil, or both are not nil and a.Error() == b.Error().
func EqualError(a, b error) bool {
	return a == nil && b == nil || a != nil && b != nil && a.Error() == b.Error()
}

// ExpectError asserts that the errors are equal.  Return value is true
// if the "want" argument is non-nil.
func ExpectError(t *testing.T, want, got error) bool {
	if !EqualError(want, got) {
		t.Fatal("errors: want:", want, "got:", got)
	}
	return want != nil
}
