package index

type warnFunc func(format string, args ...interface{})

// MergeArchiveSpecs combines per-archive specs into a single IndexSpec.  A
// spec whose name was already seen is skipped with a warning.  A class
// provided by more than one archive is reported but kept; resolution order
// decides which archive wins at lookup time.
func MergeArchiveSpecs(warn warnFunc, specs []*ArchiveSpec) (*IndexSpec, error) {
	var merged IndexSpec

	// names is used to prevent duplicate entries for a given archive.
	names := make(map[string]bool)

	// providersByClass is used to check if more than one archive provides a
	// given class.
	providersByClass := make(map[string][]string)

	for _, spec := range specs {
		if spec.Name == "" {
			warn("missing archive name: %s", spec.Filename)
			continue
		}
		if spec.Filename == "" {
			warn("missing archive filename: %s", spec.Name)
			continue
		}
		if names[spec.Name] {
			warn("duplicate archive name: %s", spec.Name)
			continue
		}
		names[spec.Name] = true
		for _, class := range spec.Classes {
			providersByClass[class] = append(providersByClass[class], spec.Name)
		}
		merged.Archives = append(merged.Archives, spec)
	}

	for class, providers := range providersByClass {
		if len(providers) > 1 {
			warn("class is provided by more than one archive: %s: %v", class, providers)
		}
	}

	return &merged, nil
}
