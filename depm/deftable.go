package depm

import "onyx/ast"

// DefTable is the per-type (or per-package, for top-level functions) store
// of defs the resolver's DefLookup consults, keyed by name.  Overload sets
// live here, in declaration order.
//
// Grounded on bootstrap/depm/symbol_table.go's SymbolTable: a name-keyed
// lookup table populated once during the declaration pass, then consulted
// read-only during resolution -- simplified here since the semantic core
// has no forward-reference/unresolved-symbol machinery of its own to
// reproduce.
type DefTable struct {
	byName map[string][]*ast.Def
	next   int
}

// NewDefTable creates an empty def table.
func NewDefTable() *DefTable {
	return &DefTable{byName: make(map[string][]*ast.Def)}
}

// Insert registers def under its own name, assigning it the table's next
// declaration-order sequence number (ast.Def.SetDeclOrder) so the ranker
// can break identical-signature ties within one owner by recency.
func (t *DefTable) Insert(def *ast.Def) {
	def.SetDeclOrder(t.next)
	t.next++
	t.byName[def.Name] = append(t.byName[def.Name], def)
}

// Lookup returns every def registered under name, in declaration order, or
// nil if none exist.
func (t *DefTable) Lookup(name string) []*ast.Def {
	return t.byName[name]
}

// All returns every def in the table, grouped by name; used by the
// package-level operator-conflict-style checks a caller may want to run
// over a freshly populated table.
func (t *DefTable) All() map[string][]*ast.Def {
	return t.byName
}
