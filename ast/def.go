package ast

import (
	"onyx/report"
	"onyx/types"
)

// Arg is a single formal parameter of a Def.
//
// Grounded on bootstrap/ast/def.go's FuncArg, extended with the fields the
// matcher needs: Default and Restriction.
type Arg struct {
	Position report.Position

	Name string

	// Default is the default-value expression, or nil if the arg is
	// required. Invariant (spec.md §3): only args before the splat, if
	// any, may carry a default.
	Default Expr

	// Restriction is the type expression constraining accepted actual
	// types, or nil if the arg is unrestricted.
	Restriction types.DataType
}

func (a *Arg) Pos() report.Position { return a.Position }

// HasDefault reports whether this arg has a default-value expression.
func (a *Arg) HasDefault() bool {
	return a.Default != nil
}

// -----------------------------------------------------------------------------

// Def is a method definition: the unit the matcher and ranker operate over.
//
// Invariants (spec.md §3): SplatIndex, when present (>= 0), is a valid
// index into Args; at most one splat per def; default values are allowed
// only on args before the splat; arg names are unique within one def.
type Def struct {
	Position report.Position

	Name string
	Args []*Arg

	// SplatIndex is the index into Args of the splat parameter, or -1 if
	// this def has no splat.
	SplatIndex int

	// BlockArg is the def's block parameter, if it declares one.
	BlockArg *Arg

	// ReturnType is the def's declared return restriction, or nil if
	// inferred.
	ReturnType types.DataType

	// Owner is the named type this def is a method of, or nil for a
	// top-level function.
	Owner *types.NamedType

	// Body is the def's body expression, typed by the external
	// general-inference collaborator once this def is chosen as a call's
	// target (spec.md §4.G step 6).
	Body Expr

	Public bool

	// declOrder disambiguates otherwise-tied specificity when the ranker
	// falls back to "later declaration wins" for identical redefinitions
	// (spec.md §4.F). Assigned by the def table at insertion time.
	declOrder int
}

func (d *Def) Pos() report.Position { return d.Position }

// HasSplat reports whether this def declares a splat parameter.
func (d *Def) HasSplat() bool {
	return d.SplatIndex >= 0
}

// DeclOrder returns the def's registration order within its DefTable,
// lowest first.
func (d *Def) DeclOrder() int {
	return d.declOrder
}

// SetDeclOrder is called by depm.DefTable when a def is registered.
func (d *Def) SetDeclOrder(n int) {
	d.declOrder = n
}

// Repr renders the def's signature for diagnostics, eg. "foo(*args : Int32)".
func (d *Def) Repr() string {
	s := d.Name + "("
	for i, arg := range d.Args {
		if i == d.SplatIndex {
			s += "*"
		}

		s += arg.Name

		if arg.Restriction != nil {
			s += " : " + arg.Restriction.Repr()
		}

		if i < len(d.Args)-1 {
			s += ", "
		}
	}
	s += ")"
	return s
}
