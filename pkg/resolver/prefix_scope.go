package resolver

import "fmt"

// PrefixScope implements Scope as a view of the symbols under a fixed
// prefix of another scope.  Lookups are relative: with prefix "com.foo",
// GetSymbol("Bar") answers for "com.foo.Bar".
type PrefixScope struct {
	prefix string
	next   Scope
}

func NewPrefixScope(prefix string, next Scope) *PrefixScope {
	return &PrefixScope{
		prefix: prefix,
		next:   next,
	}
}

// PutSymbol is not supported and will return an error.
func (r *PrefixScope) PutSymbol(symbol *Symbol) error {
	return fmt.Errorf("unsupported operation: PutSymbol")
}

// GetScope implements part of the resolver.Scope interface.
func (r *PrefixScope) GetScope(prefix string) (Scope, bool) {
	return r.next.GetScope(r.qualify(prefix))
}

// GetSymbol implements part of the Scope interface
func (r *PrefixScope) GetSymbol(name string) (*Symbol, bool) {
	return r.next.GetSymbol(r.qualify(name))
}

// GetExactSymbol implements part of the Scope interface
func (r *PrefixScope) GetExactSymbol(name string) (*Symbol, bool) {
	return r.next.GetExactSymbol(r.qualify(name))
}

// GetSymbols implements part of the Scope interface
func (r *PrefixScope) GetSymbols(prefix string) []*Symbol {
	return r.next.GetSymbols(r.qualify(prefix))
}

func (r *PrefixScope) qualify(name string) string {
	if name == "" {
		return r.prefix
	}
	return r.prefix + "." + name
}

// String implements the fmt.Stringer interface
func (r *PrefixScope) String() string {
	return fmt.Sprintf("%s.*", r.prefix)
}
