package resolver

import "fmt"

// ErrSymbolNotFound is the error value returned when a symbol cannot be
// resolved by any scope in the search path.
var ErrSymbolNotFound = fmt.Errorf("symbol not found")

// Scope is an index of known symbols.
type Scope interface {
	fmt.Stringer

	// GetScope returns a view of the symbols under the given prefix.
	GetScope(prefix string) (Scope, bool)

	// GetSymbol does a lookup of the given symbol name and returns the
	// known symbol.  An exact entry matches; so does the deepest class
	// prefix of the name (member access through a class).  A package
	// entry matches only exactly: a package does not define the names
	// beneath it.  If not known `(nil, false)` is returned.
	GetSymbol(name string) (*Symbol, bool)

	// GetExactSymbol does a lookup of the given symbol name without
	// prefix fallback.
	GetExactSymbol(name string) (*Symbol, bool)

	// GetSymbols does a lookup of the given prefix and returns the
	// symbols under it.
	GetSymbols(prefix string) []*Symbol

	// PutSymbol adds the given symbol to the scope.
	PutSymbol(symbol *Symbol) error
}
