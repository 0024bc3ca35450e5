package index

// IndexSpec describes a list of ArchiveSpecs.
type IndexSpec struct {
	// Archives is the list of archives in the index.
	Archives []*ArchiveSpec `json:"archives,omitempty"`
}

// ArchiveSpec describes the symbols provided by a single archive file.
type ArchiveSpec struct {
	// Name is the display name of the archive (defaults to the base
	// filename).
	Name string `json:"name,omitempty"`
	// Filename is the archive filename
	Filename string `json:"filename,omitempty"`
	// Sha256 is the sha256 hash of the archive contents
	Sha256 string `json:"sha256,omitempty"`
	// Classes is a list of FQNs in the archive
	Classes []string `json:"classes,omitempty"`
	// Packages is a list of packages represented in the archive
	Packages []string `json:"packages,omitempty"`
}
