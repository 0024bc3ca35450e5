package pathext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandDescriptors expands glob patterns (e.g. "segments/*.zip",
// "**/classes*.zip") into concrete descriptor paths.  Non-pattern arguments
// pass through unchanged, whether or not the file exists: a missing
// descriptor is reported by Install as a suppressed failure, not here.
// Matches for a single pattern are sorted so the install order is stable.
func ExpandDescriptors(patterns []string) ([]string, error) {
	var descriptors []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			descriptors = append(descriptors, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad descriptor pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		descriptors = append(descriptors, matches...)
	}
	return descriptors, nil
}
