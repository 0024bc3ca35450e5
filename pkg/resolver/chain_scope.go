package resolver

import (
	"fmt"
	"strings"
)

// ChainScope implements Scope over an ordered chain of scopes.  An exact
// entry anywhere in the chain wins over prefix fallback: a class unique to a
// later scope is never shadowed by a shallower prefix in an earlier one.
// Among exact entries, and among equally-deep prefix matches, the earliest
// scope wins.
type ChainScope struct {
	chain []Scope
}

func NewChainScope(chain ...Scope) *ChainScope {
	return &ChainScope{
		chain: chain,
	}
}

// PutSymbol is not supported and will return an error.
func (r *ChainScope) PutSymbol(symbol *Symbol) error {
	return fmt.Errorf("unsupported operation: PutSymbol")
}

// GetScope implements part of the resolver.Scope interface.
func (r *ChainScope) GetScope(prefix string) (Scope, bool) {
	for _, next := range r.chain {
		if scope, ok := next.GetScope(prefix); ok {
			return scope, true
		}
	}
	return nil, false
}

// GetSymbol implements part of the Scope interface
func (r *ChainScope) GetSymbol(name string) (*Symbol, bool) {
	if symbol, ok := r.GetExactSymbol(name); ok {
		return symbol, true
	}
	// no exact entry anywhere: fall back to the deepest prefix match
	// across the chain, earliest scope winning ties
	var best *Symbol
	for _, next := range r.chain {
		symbol, ok := next.GetSymbol(name)
		if !ok {
			continue
		}
		if best == nil || len(symbol.Name) > len(best.Name) {
			best = symbol
		}
	}
	return best, best != nil
}

// GetExactSymbol implements part of the Scope interface
func (r *ChainScope) GetExactSymbol(name string) (*Symbol, bool) {
	for _, next := range r.chain {
		if symbol, ok := next.GetExactSymbol(name); ok {
			return symbol, true
		}
	}
	return nil, false
}

// GetSymbols implements part of the Scope interface
func (r *ChainScope) GetSymbols(prefix string) []*Symbol {
	for _, next := range r.chain {
		if symbols := next.GetSymbols(prefix); len(symbols) > 0 {
			return symbols
		}
	}
	return nil
}

// Len returns the number of scopes in the chain.
func (r *ChainScope) Len() int {
	return len(r.chain)
}

// String implements the fmt.Stringer interface
func (r *ChainScope) String() string {
	var buf strings.Builder
	for _, next := range r.chain {
		buf.WriteString(next.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}
