package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChainScope(t *testing.T) {
	for name, tc := range map[string]struct {
		scopes []Scope
		name   string
		want   *Symbol
	}{
		"degenerate": {},
		"miss": {
			name: "com.foo.Bar",
			scopes: func() []Scope {
				scope := NewTrieScope()
				scope.PutSymbol(makeSymbol(SymbolTypeClass, "com.quux.Zap", "quux.zip"))
				return []Scope{scope}
			}(),
			want: nil,
		},
		"hit in second scope": {
			name: "com.foo.Bar",
			scopes: func() []Scope {
				first := NewTrieScope()
				first.PutSymbol(makeSymbol(SymbolTypeClass, "com.quux.Zap", "quux.zip"))
				second := NewTrieScope()
				second.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "foo.zip"))
				return []Scope{first, second}
			}(),
			want: makeSymbol(SymbolTypeClass, "com.foo.Bar", "foo.zip"),
		},
		"earlier scope wins": {
			name: "com.foo.Bar",
			scopes: func() []Scope {
				first := NewTrieScope()
				first.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "first.zip"))
				second := NewTrieScope()
				second.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "second.zip"))
				return []Scope{first, second}
			}(),
			want: makeSymbol(SymbolTypeClass, "com.foo.Bar", "first.zip"),
		},
		"package in earlier scope does not shadow class in later scope": {
			name: "com.foo.Bar",
			scopes: func() []Scope {
				first := NewTrieScope()
				first.PutSymbol(makeSymbol(SymbolTypePackage, "com.foo", "first.zip"))
				first.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Baz", "first.zip"))
				second := NewTrieScope()
				second.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "second.zip"))
				return []Scope{first, second}
			}(),
			want: makeSymbol(SymbolTypeClass, "com.foo.Bar", "second.zip"),
		},
		"absent name with only package prefixes misses": {
			name: "com.foo.Absent",
			scopes: func() []Scope {
				first := NewTrieScope()
				first.PutSymbol(makeSymbol(SymbolTypePackage, "com.foo", "first.zip"))
				second := NewTrieScope()
				second.PutSymbol(makeSymbol(SymbolTypePackage, "com.foo", "second.zip"))
				return []Scope{first, second}
			}(),
			want: nil,
		},
		"member access prefers deeper class in later scope": {
			name: "com.foo.Bar.method",
			scopes: func() []Scope {
				first := NewTrieScope()
				first.PutSymbol(makeSymbol(SymbolTypePackage, "com.foo", "first.zip"))
				second := NewTrieScope()
				second.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "second.zip"))
				return []Scope{first, second}
			}(),
			want: makeSymbol(SymbolTypeClass, "com.foo.Bar", "second.zip"),
		},
		"equally deep class prefixes: earlier scope wins": {
			name: "com.foo.Bar.method",
			scopes: func() []Scope {
				first := NewTrieScope()
				first.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "first.zip"))
				second := NewTrieScope()
				second.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "second.zip"))
				return []Scope{first, second}
			}(),
			want: makeSymbol(SymbolTypeClass, "com.foo.Bar", "first.zip"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			scope := NewChainScope(tc.scopes...)
			got, _ := scope.GetSymbol(tc.name)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestChainScopeGetScope(t *testing.T) {
	first := NewTrieScope()
	first.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "first.zip"))
	second := NewTrieScope()
	second.PutSymbol(makeSymbol(SymbolTypeClass, "com.quux.Zap", "second.zip"))
	scope := NewChainScope(first, second)

	sub, ok := scope.GetScope("com.quux")
	if !ok {
		t.Fatal("com.quux scope should exist")
	}
	symbol, ok := sub.GetSymbol("Zap")
	if !ok {
		t.Fatal("Zap should resolve relative to the com.quux scope")
	}
	if symbol.Source != "second.zip" {
		t.Errorf("source: want %q, got %q", "second.zip", symbol.Source)
	}
}

func TestChainScopePutSymbol(t *testing.T) {
	scope := NewChainScope(NewTrieScope())
	if err := scope.PutSymbol(makeSymbol(SymbolTypeClass, "com.foo.Bar", "foo.zip")); err == nil {
		t.Error("expected unsupported operation error")
	}
}
