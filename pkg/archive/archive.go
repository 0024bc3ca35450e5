// Package archive implements lookup sources backed by archive files.  A
// source is opened and indexed once; after construction it is immutable and
// safe for concurrent reads.
package archive

import (
	"archive/zip"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pcj/pathext/pkg/collections"
	"github.com/pcj/pathext/pkg/index"
	"github.com/pcj/pathext/pkg/resolver"
)

// ProviderName is the provider recorded on symbols supplied by archives.
const ProviderName = "archive"

// Source is an opened lookup source: an archive file plus its parsed entry
// index.  Immutable once constructed.
type Source struct {
	path   string
	digest string
	spec   *index.ArchiveSpec
	scope  *resolver.TrieScope
}

// Open opens the descriptor path and parses it into a Source.  Two
// descriptor forms are supported: a zip archive (symbols come from an
// embedded index manifest if present, otherwise from the entry paths
// themselves), and a bare .json index file.
func Open(path string) (*Source, error) {
	digest, err := collections.FileSha256(path)
	if err != nil {
		return nil, fmt.Errorf("digest %q: %w", path, err)
	}

	var spec *index.ArchiveSpec
	if strings.HasSuffix(path, ".json") {
		spec, err = index.ReadArchiveSpec(path)
	} else {
		spec, err = readArchive(path)
	}
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = filepath.Base(path)
	}
	if spec.Filename == "" {
		spec.Filename = path
	}
	spec.Sha256 = digest

	src := &Source{
		path:   path,
		digest: digest,
		spec:   spec,
		scope:  resolver.NewTrieScope(),
	}
	for _, pkg := range spec.Packages {
		if err := src.scope.PutSymbol(resolver.NewSymbol(resolver.SymbolTypePackage, pkg, ProviderName, spec.Name)); err != nil {
			return nil, err
		}
	}
	for _, class := range spec.Classes {
		if err := src.scope.PutSymbol(resolver.NewSymbol(resolver.SymbolTypeClass, class, ProviderName, spec.Name)); err != nil {
			return nil, err
		}
	}
	return src, nil
}

// readArchive parses the spec from a zip archive, preferring an embedded
// index manifest over a scan of the entry paths.
func readArchive(path string) (*index.ArchiveSpec, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != index.IndexFileName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %q: %w", index.IndexFileName, path, err)
		}
		defer rc.Close()
		spec, err := index.ReadArchiveSpecFrom(rc)
		if err != nil {
			return nil, fmt.Errorf("parse %s in %q: %w", index.IndexFileName, path, err)
		}
		return spec, nil
	}

	return index.ScanArchive(path, nil)
}

// Name returns the display name of the source.
func (s *Source) Name() string {
	return s.spec.Name
}

// Path returns the descriptor path the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// Digest returns the sha256 of the archive contents.  Sources with equal
// digests are considered the same source.
func (s *Source) Digest() string {
	return s.digest
}

// Spec returns the parsed entry index.
func (s *Source) Spec() *index.ArchiveSpec {
	return s.spec
}

// Scope returns the symbol scope of the source.
func (s *Source) Scope() resolver.Scope {
	return s.scope
}

// String implements fmt.Stringer
func (s *Source) String() string {
	return fmt.Sprintf("%s (%d classes, %d packages)", s.spec.Name, len(s.spec.Classes), len(s.spec.Packages))
}
