package index

import (
	"archive/zip"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// visitFunc is called for each class entry discovered during a scan.
type visitFunc func(entry, class string)

// ScanArchive derives an ArchiveSpec from the entries of a zip archive.  An
// entry "com/foo/Bar.class" contributes the class "com.foo.Bar" and the
// package "com.foo".  Entries under META-INF and the index manifest itself
// are skipped.  The visit callback, if non-nil, is invoked once per class
// entry.
func ScanArchive(filename string, visit visitFunc) (*ArchiveSpec, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", filename, err)
	}
	defer r.Close()

	spec := &ArchiveSpec{
		Name:     filepath.Base(filename),
		Filename: filename,
	}

	packages := make(map[string]struct{})
	for _, f := range r.File {
		class, ok := entryClassName(f.Name)
		if !ok {
			continue
		}
		if visit != nil {
			visit(f.Name, class)
		}
		spec.Classes = append(spec.Classes, class)
		if dir := path.Dir(f.Name); dir != "." {
			packages[strings.Replace(dir, "/", ".", -1)] = struct{}{}
		}
	}

	for pkg := range packages {
		spec.Packages = append(spec.Packages, pkg)
	}
	sort.Strings(spec.Packages)
	sort.Strings(spec.Classes)

	return spec, nil
}

// entryClassName converts an archive entry path to a fully-qualified class
// name.  Returns false for entries that do not represent classes.
func entryClassName(name string) (string, bool) {
	if strings.HasSuffix(name, "/") {
		return "", false
	}
	if strings.HasPrefix(name, "META-INF/") || name == IndexFileName {
		return "", false
	}
	ext := path.Ext(name)
	if ext != ".class" {
		return "", false
	}
	class := strings.TrimSuffix(name, ext)
	class = strings.Replace(class, "/", ".", -1)
	class = strings.Replace(class, "$", ".", 1)
	return class, true
}
