// Package pathext implements a symbol resolver whose ordered search path of
// archive-backed lookup sources can be extended while resolution is in
// flight.  The resolver owns its sources outright: extension is an ordinary
// append under an exclusive lock followed by one atomic snapshot swap, so
// concurrent lookups always see either the old search path or the new one,
// never a mix.
package pathext

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/pcj/pathext/pkg/archive"
	"github.com/pcj/pathext/pkg/resolver"
)

const defaultOpenTimeout = 30 * time.Second

// state is an immutable snapshot of the resolver search path.  A new state
// is built under the install lock and swapped in with a single atomic store.
type state struct {
	// sources is the ordered search path.  Append-only: never reordered,
	// never shrunk.
	sources []*archive.Source
	// scope chains the source scopes in search-path order.
	scope *resolver.ChainScope
	// suppressed is the append-only list of per-source open failures.
	suppressed []error
	// digests records the content digest of every installed source.
	digests map[string]bool
}

// Resolver resolves fully-qualified symbol names against an ordered sequence
// of lookup sources.  A symbol present in an earlier-installed source is
// never shadowed by a later one.  The zero value is not usable; construct
// with NewResolver.
type Resolver struct {
	logger      zerolog.Logger
	openTimeout time.Duration

	// mu serializes Install and Close.  Lookups do not take it.
	mu    sync.Mutex
	state atomic.Pointer[state]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report suppressed source failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithOpenTimeout bounds how long a single source open may take before it is
// recorded as a suppressed failure.
func WithOpenTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		r.openTimeout = timeout
	}
}

// NewResolver constructs a resolver with an empty search path.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{
		logger:      zerolog.Nop(),
		openTimeout: defaultOpenTimeout,
	}
	for _, opt := range options {
		opt(r)
	}
	r.state.Store(&state{
		scope:   resolver.NewChainScope(),
		digests: make(map[string]bool),
	})
	return r
}

// Install opens each descriptor and appends the resulting sources to the
// search path, preserving descriptor order.  An empty descriptor list is a
// no-op success.  A descriptor that cannot be opened does not abort the
// others: the failure is logged, recorded on the suppressed failure list,
// and the call still succeeds.  Re-installing a source whose content digest
// is already present is a no-op, never an error.  Install calls serialize;
// lookups concurrent with Install observe either the old search path or the
// new one in full.
func (r *Resolver) Install(descriptors ...string) error {
	if r == nil {
		return ErrResolverUnavailable
	}
	if len(descriptors) == 0 {
		return nil
	}

	// Open sources before taking the lock; archive I/O must not block
	// concurrent installs longer than necessary.
	var opened []*archive.Source
	var failed []error
	for _, descriptor := range descriptors {
		src, err := r.open(descriptor)
		if err != nil {
			r.logger.Warn().Str("descriptor", descriptor).Err(err).Msg("skipping unreadable source")
			failed = append(failed, &SourceUnreadableError{Descriptor: descriptor, Err: err})
			continue
		}
		opened = append(opened, src)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.state.Load()
	if old == nil {
		return ErrResolverUnavailable
	}

	next := &state{
		sources:    old.sources,
		suppressed: append(old.suppressed, failed...),
		digests:    make(map[string]bool, len(old.digests)+len(opened)),
	}
	for digest := range old.digests {
		next.digests[digest] = true
	}
	for _, src := range opened {
		if next.digests[src.Digest()] {
			r.logger.Debug().Str("source", src.Name()).Msg("source already installed")
			continue
		}
		next.digests[src.Digest()] = true
		next.sources = append(next.sources, src)
	}

	scopes := make([]resolver.Scope, len(next.sources))
	for i, src := range next.sources {
		scopes[i] = src.Scope()
	}
	next.scope = resolver.NewChainScope(scopes...)

	r.state.Store(next)
	return nil
}

// Resolve looks up a fully-qualified name against the current search path.
// Returns ErrSymbolNotFound if no source provides it.
func (r *Resolver) Resolve(name string) (*resolver.Symbol, error) {
	if r == nil {
		return nil, ErrResolverUnavailable
	}
	st := r.state.Load()
	if st == nil {
		return nil, ErrResolverUnavailable
	}
	symbol, ok := st.scope.GetSymbol(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, resolver.ErrSymbolNotFound)
	}
	return symbol, nil
}

// ResolvePrefix returns all symbols under the given dotted prefix, taken
// from the first source that provides any.
func (r *Resolver) ResolvePrefix(prefix string) []*resolver.Symbol {
	if r == nil {
		return nil
	}
	st := r.state.Load()
	if st == nil {
		return nil
	}
	return st.scope.GetSymbols(prefix)
}

// Sources returns the current search path in resolution order.
func (r *Resolver) Sources() []*archive.Source {
	if r == nil {
		return nil
	}
	st := r.state.Load()
	if st == nil {
		return nil
	}
	sources := make([]*archive.Source, len(st.sources))
	copy(sources, st.sources)
	return sources
}

// Suppressed returns the suppressed failure list accumulated across all
// Install calls, oldest first.
func (r *Resolver) Suppressed() []error {
	if r == nil {
		return nil
	}
	st := r.state.Load()
	if st == nil {
		return nil
	}
	suppressed := make([]error, len(st.suppressed))
	copy(suppressed, st.suppressed)
	return suppressed
}

// Close invalidates the resolver.  Subsequent Install and Resolve calls
// return ErrResolverUnavailable.  Lookups already in flight that captured a
// snapshot are unaffected.
func (r *Resolver) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Store(nil)
}

// open opens a single descriptor, bounded by the configured timeout.  A hung
// open is reported as an error for that source only.
func (r *Resolver) open(descriptor string) (*archive.Source, error) {
	type result struct {
		src *archive.Source
		err error
	}
	ch := make(chan result, 1)
	go func() {
		src, err := archive.Open(descriptor)
		ch <- result{src, err}
	}()
	select {
	case res := <-ch:
		return res.src, res.err
	case <-time.After(r.openTimeout):
		return nil, fmt.Errorf("open %s: timed out after %v", descriptor, r.openTimeout)
	}
}
