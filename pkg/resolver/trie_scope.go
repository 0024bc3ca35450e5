package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dghubble/trie"
)

// errStopWalk aborts a trie walk once a match has been found.
var errStopWalk = errors.New("stop walk")

// TrieScope implements Scope using a trie keyed by dotted name segments.  A
// lookup of "com.foo.Bar.method" that finds no exact entry resolves to the
// deepest registered class prefix (the class "com.foo.Bar").  Package
// entries only match exactly: the package "com.foo" does not answer for
// "com.foo.Bar".
type TrieScope struct {
	symbols *trie.PathTrie
}

// NewTrieScope constructs a new TrieScope.
func NewTrieScope() *TrieScope {
	return &TrieScope{
		symbols: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: nameSegmenter,
		}),
	}
}

// GetScope implements part of the resolver.Scope interface.
func (r *TrieScope) GetScope(prefix string) (Scope, bool) {
	found := false
	r.symbols.Walk(func(key string, value interface{}) error {
		if key == prefix || strings.HasPrefix(key, prefix+".") {
			found = true
			return errStopWalk
		}
		return nil
	})
	if !found {
		return nil, false
	}
	return NewPrefixScope(prefix, r), true
}

// GetSymbol implements part of the resolver.Scope interface.
func (r *TrieScope) GetSymbol(name string) (*Symbol, bool) {
	var last *Symbol
	r.symbols.WalkPath(name, func(key string, value interface{}) error {
		symbol := value.(*Symbol)
		if symbol.Name == name || symbol.Type == SymbolTypeClass {
			last = symbol
		}
		return nil
	})
	if last == nil {
		return nil, false
	}
	return last, true
}

// GetExactSymbol implements part of the resolver.Scope interface.
func (r *TrieScope) GetExactSymbol(name string) (*Symbol, bool) {
	value := r.symbols.Get(name)
	if value == nil {
		return nil, false
	}
	return value.(*Symbol), true
}

// GetSymbols implements part of the resolver.Scope interface.
func (r *TrieScope) GetSymbols(prefix string) (symbols []*Symbol) {
	r.symbols.Walk(func(key string, value interface{}) error {
		if key == prefix || prefix == "" || strings.HasPrefix(key, prefix+".") {
			symbols = append(symbols, value.(*Symbol))
		}
		return nil
	})
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name < symbols[j].Name
	})
	return
}

// PutSymbol implements part of the Scope interface.
func (r *TrieScope) PutSymbol(symbol *Symbol) error {
	if symbol.Provider == "" {
		return fmt.Errorf("missing provider: %v", symbol)
	}
	r.symbols.Put(symbol.Name, symbol)
	return nil
}

// String implements the fmt.Stringer interface.
func (r *TrieScope) String() string {
	var buf strings.Builder
	for _, symbol := range r.GetSymbols("") {
		buf.WriteString(symbol.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}

// nameSegmenter segments string key paths by dot separators. For example,
// ".a.b.c" -> (".a", 2), (".b", 4), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
