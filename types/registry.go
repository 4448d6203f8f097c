package types

import "sync"

// TypeID is an opaque handle into a Registry.  Typed expressions (Ident,
// Literal) and the resolver's effective arguments hold TypeIDs; a Def's
// restrictions, return type and owner hold DataType values directly.  See
// spec.md §9, "Cyclic references".
type TypeID uint64

// Registry is the process-wide, append-only store of interned types
// consulted during semantic analysis.  It is safe to call Intern
// re-entrantly from within the matcher (spec.md §5), guarded by a mutex the
// way bootstrap/depm/symbol_table.go guards its lookup table.
type Registry struct {
	m     sync.Mutex
	types []DataType
	byKey map[string]TypeID
}

// NewRegistry creates an empty type registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]TypeID),
	}
}

// Intern records dt in the registry (deduplicating by representation) and
// returns its handle.
func (r *Registry) Intern(dt DataType) TypeID {
	r.m.Lock()
	defer r.m.Unlock()

	key := dt.Repr()
	if id, ok := r.byKey[key]; ok {
		return id
	}

	id := TypeID(len(r.types))
	r.types = append(r.types, dt)
	r.byKey[key] = id
	return id
}

// Lookup resolves a handle back to its underlying DataType. It panics on an
// unknown handle: an unresolved TypeID reaching the matcher is an internal
// compiler error, not a recoverable condition.
func (r *Registry) Lookup(id TypeID) DataType {
	r.m.Lock()
	defer r.m.Unlock()

	if int(id) >= len(r.types) {
		panic("types: unresolved TypeID")
	}

	return r.types[id]
}

// -----------------------------------------------------------------------------
// External interface consulted by resolve (spec.md §6 "Type system → matcher").

// TypeOf is implemented by whatever collaborator can report the currently
// inferred type of an expression.  The resolve package does not use it: it
// declares its own resolve.TypeOf, keyed on ast.Expr.
type TypeOf interface {
	TypeOf(expr any) (TypeID, bool)
}

// RemoveAlias unwraps AliasType wrappers down to their underlying
// representation.  Named types, primitives, etc. are returned unchanged.
func RemoveAlias(dt DataType) DataType {
	for {
		at, ok := dt.(*AliasType)
		if !ok {
			return dt
		}

		dt = at.Target
	}
}

// IsUnion reports whether dt (after alias removal) is a UnionType.
func IsUnion(dt DataType) bool {
	_, ok := RemoveAlias(dt).(UnionType)
	return ok
}

// TupleElements returns the element types of dt if it is (after alias
// removal) a tuple type, and false otherwise.
func TupleElements(dt DataType) ([]DataType, bool) {
	if tt, ok := RemoveAlias(dt).(TupleType); ok {
		return []DataType(tt), true
	}

	return nil, false
}

// TupleShapeCount returns, for a union type, the number of distinct tuple
// shapes among its members (0 if dt is not a union, or none of its members
// are tuples). A count above one is the SplatUnion condition; the argument
// preprocessor counts shapes itself rather than calling this.
func TupleShapeCount(dt DataType) int {
	if ut, ok := RemoveAlias(dt).(UnionType); ok {
		return ut.tupleShapeCount()
	}

	return 0
}
