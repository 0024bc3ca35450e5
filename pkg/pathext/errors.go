package pathext

import "fmt"

// ErrResolverUnavailable is returned when the resolver handle is nil or has
// been closed.
var ErrResolverUnavailable = fmt.Errorf("resolver unavailable")

// SourceUnreadableError records a descriptor that could not be opened or
// parsed.  It is suppressed rather than propagated: the install call that
// produced it still succeeds for the remaining descriptors.
type SourceUnreadableError struct {
	// Descriptor is the descriptor path as given to Install.
	Descriptor string
	// Err is the underlying open or parse error.
	Err error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("source unreadable: %s: %v", e.Descriptor, e.Err)
}

func (e *SourceUnreadableError) Unwrap() error {
	return e.Err
}
