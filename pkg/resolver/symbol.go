package resolver

import "fmt"

// SymbolType classifies what kind of loadable unit a symbol names.
type SymbolType int

const (
	SymbolTypeUnknown SymbolType = iota
	// SymbolTypePackage is a dotted package prefix provided by a source.
	SymbolTypePackage
	// SymbolTypeClass is a fully-qualified class provided by a source.
	SymbolTypeClass
)

// String implements fmt.Stringer
func (t SymbolType) String() string {
	switch t {
	case SymbolTypePackage:
		return "PACKAGE"
	case SymbolTypeClass:
		return "CLASS"
	default:
		return "UNKNOWN"
	}
}

// Symbol associates a name with the lookup source that provides it, along
// with a type classifier that says what kind of symbol it is.
type Symbol struct {
	// Type is the kind of symbol this is.
	Type SymbolType
	// Name is the fully-qualified dotted name.
	Name string
	// Source is the name of the lookup source where the symbol is provided
	// from.
	Source string
	// Provider is the name of the provider that supplied the symbol.
	Provider string
}

// NewSymbol constructs a new symbol pointer with the given arguments.
func NewSymbol(typ SymbolType, name, provider, source string) *Symbol {
	return &Symbol{
		Type:     typ,
		Name:     name,
		Provider: provider,
		Source:   source,
	}
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	return fmt.Sprintf("(%s<%v> %s<%v>)", s.Name, s.Type, s.Source, s.Provider)
}
