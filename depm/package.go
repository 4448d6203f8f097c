package depm

import (
	"onyx/ast"
	"onyx/types"

	"github.com/google/uuid"
)

// Package is a compilation unit's declaration space: every top-level
// function and every named type's method set, keyed the way the resolver
// needs to query them.
//
// Grounded on bootstrap/depm/source.go's ChaiPackage, with the fnv-hash ID
// scheme there replaced by a uuid.UUID -- packages here are addressed by
// manifest-driven module identity (config.Manifest), not by a hash of a
// filesystem path, so a stable random ID fits better than a content hash.
type Package struct {
	ID   uuid.UUID
	Name string

	Registry *types.Registry

	// TopLevel holds package-scope functions, ie. defs with a nil Owner.
	TopLevel *DefTable

	// methods holds the per-named-type method tables, keyed by the owner's
	// Repr() so that two NamedType values naming the same declared type
	// share one table regardless of pointer identity.
	methods map[string]*DefTable

	// types indexes every named type this package declares, by name, as
	// read back through LookupType.
	types map[string]*types.NamedType
}

// NewPackage creates an empty package with a freshly generated identity.
func NewPackage(name string, reg *types.Registry) *Package {
	return &Package{
		ID:       uuid.New(),
		Name:     name,
		Registry: reg,
		TopLevel: NewDefTable(),
		methods:  make(map[string]*DefTable),
		types:    make(map[string]*types.NamedType),
	}
}

// DeclareType registers a named type as owned by this package.
func (p *Package) DeclareType(nt *types.NamedType) {
	p.types[nt.TypeName] = nt
}

// LookupType retrieves a previously declared named type by its bare name.
func (p *Package) LookupType(name string) (*types.NamedType, bool) {
	nt, ok := p.types[name]
	return nt, ok
}

// Methods returns the method table for owner, creating one if this is the
// first def declared against it.
func (p *Package) Methods(owner *types.NamedType) *DefTable {
	key := owner.Repr()
	tbl, ok := p.methods[key]
	if !ok {
		tbl = NewDefTable()
		p.methods[key] = tbl
	}
	return tbl
}

// Declare registers def in the appropriate table: TopLevel if it has no
// owner, or that owner's method table otherwise.
func (p *Package) Declare(def *ast.Def) {
	if def.Owner == nil {
		p.TopLevel.Insert(def)
		return
	}
	p.Methods(def.Owner).Insert(def)
}

// AllMethods returns every declared method table, keyed by owner Repr(),
// for callers (eg. codegen) that need to walk the full method set without
// going through a specific NamedType value.
func (p *Package) AllMethods() map[string]*DefTable {
	return p.methods
}

// -----------------------------------------------------------------------------
// resolve.DefLookup

// Lookup implements resolve.DefLookup: for a method call, it gathers every
// def named `name` visible along receiverType's own type and its full
// transitive ancestor chain, nearest first, so that the ranker can see
// every overriding candidate at once (spec.md §6, "dispatch").  For a
// top-level call (receiverType == nil), it consults TopLevel instead.
func (p *Package) Lookup(receiverType types.DataType, name string) []*ast.Def {
	if receiverType == nil {
		return p.TopLevel.Lookup(name)
	}

	nt, ok := types.RemoveAlias(receiverType).(*types.NamedType)
	if !ok {
		return p.TopLevel.Lookup(name)
	}

	var defs []*ast.Def
	defs = append(defs, p.Methods(nt).Lookup(name)...)
	for _, anc := range transitiveAncestors(nt) {
		defs = append(defs, p.Methods(anc).Lookup(name)...)
	}

	return defs
}

// LookupAncestor implements resolve.DefLookup: it collects defs named
// `name` from owner's full transitive ancestor chain, excluding owner's
// own method table -- used by super-call forwarding to skip straight past
// the overriding method that issued the super call.
func (p *Package) LookupAncestor(owner *types.NamedType, name string) []*ast.Def {
	var defs []*ast.Def
	for _, anc := range transitiveAncestors(owner) {
		defs = append(defs, p.Methods(anc).Lookup(name)...)
	}
	return defs
}

// transitiveAncestors flattens owner's Ancestors chain -- which
// types.NamedType stores as immediate parents only, the same way
// IsSubtypeOf walks it recursively -- into the full nearest-first
// ancestry, deduplicated by Repr() against diamond inheritance revisiting
// a common ancestor through more than one path.
func transitiveAncestors(owner *types.NamedType) []*types.NamedType {
	seen := map[string]struct{}{owner.Repr(): {}}
	var out []*types.NamedType

	var walk func(nt *types.NamedType)
	walk = func(nt *types.NamedType) {
		for _, anc := range nt.Ancestors {
			if _, dup := seen[anc.Repr()]; dup {
				continue
			}
			seen[anc.Repr()] = struct{}{}
			out = append(out, anc)
			walk(anc)
		}
	}
	walk(owner)

	return out
}
