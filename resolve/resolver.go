package resolve

import (
	"onyx/ast"
	"onyx/types"
	"onyx/util"
)

// DefLookup resolves a call's name against the visible definitions of a
// receiver's type chain, and against a method's own ancestor chain for
// super-call forwarding.  This is the external "declaration pass"
// collaborator named in spec.md §1: the resolver never constructs Defs
// itself, only consults them.
type DefLookup interface {
	// Lookup returns every def named `name` visible from receiverType's
	// type chain, nearest type first and each type's defs in declaration
	// order.
	Lookup(receiverType types.DataType, name string) []*ast.Def

	// LookupAncestor returns every def named `name` visible from owner's
	// *ancestor* chain (excluding owner itself), used by super-call
	// forwarding.
	LookupAncestor(owner *types.NamedType, name string) []*ast.Def
}

// BodyTyper is the external general type-inference collaborator that
// types a chosen def's body once the resolver has bound a call to it
// (spec.md §4.G step 6). The semantic core described by this package does
// not implement flow analysis or unification; it only calls out to it.
type BodyTyper interface {
	TypeBody(def *ast.Def, bindings []Binding) (types.TypeID, error)
}

// Resolver is the entry point for component G: it orchestrates the
// preprocessor, partitioner, matcher, and ranker for a single call, then
// binds the winner back onto the call site.
//
// Grounded on src/resolve/resolver.go's orchestration shape and
// bootstrap/walk/walk_def.go's parameter/scope declaration loop (used
// here for super-call argument reconstruction).
type Resolver struct {
	Defs     DefLookup
	Types    TypeOf
	Registry *types.Registry
	Bodies   BodyTyper
}

// NewResolver builds a Resolver from its collaborators.
func NewResolver(defs DefLookup, tv TypeOf, reg *types.Registry, bodies BodyTyper) *Resolver {
	return &Resolver{Defs: defs, Types: tv, Registry: reg, Bodies: bodies}
}

// Resolve implements the full 4.G protocol for one call. enclosing is the
// method containing the call, needed only for super-call forwarding
// (nil for a call not inside a method body). receiverType is the static
// type of call.Receiver (or the enclosing owner's type for an implicit
// self-receiver).
func (r *Resolver) Resolve(call *ast.Call, enclosing *ast.Def, receiverType types.DataType) error {
	lookupList, err := r.lookupList(call, enclosing, receiverType)
	if err != nil {
		return r.fail(call, err)
	}

	e, n, err := Preprocess(call, r.Types, r.Registry)
	if err != nil {
		return r.fail(call, err)
	}
	call.State = ast.CallPreprocessed

	hasBlock := call.Block != nil

	var matches []*Candidate
	var rejected []*ast.Def
	var reasons []string

	for _, def := range lookupList {
		cand, matchErr := Match(def, e, n, hasBlock, r.Types, r.Registry)
		if matchErr != nil {
			rejected = append(rejected, def)
			reasons = append(reasons, matchErr.Error())
			continue
		}
		matches = append(matches, cand)
	}

	winners, err := Rank(call.Name, matches, rejected, reasons)
	if err != nil {
		if nom, ok := err.(*NoOverloadMatches); ok && nom.ArgTypes == nil {
			nom.ArgTypes = make([]string, len(e))
			for i, a := range e {
				nom.ArgTypes[i] = r.Registry.Lookup(a.Type).Repr()
			}
		}
		return r.fail(call, err)
	}
	call.State = ast.CallMatched

	call.TargetDefs = util.Map(winners, func(w *Candidate) *ast.Def { return w.Def })

	// Canonicalize call.Args into the winner's positional vector and
	// clear NamedArgs -- the rewrite is semantic, done atomically, per
	// spec.md §9's "Mutable AST during resolution" note. All winners in a
	// dispatch share an identical signature, so any one's bindings
	// produce the same canonical positional order.
	call.Args = canonicalizeArgs(winners[0].Bindings)
	call.NamedArgs = nil
	call.State = ast.CallBound

	if r.Bodies != nil {
		tid, err := r.Bodies.TypeBody(winners[0].Def, winners[0].Bindings)
		if err != nil {
			return r.fail(call, err)
		}
		call.ResolvedType = tid
	}
	call.State = ast.CallTyped

	return nil
}

func (r *Resolver) lookupList(call *ast.Call, enclosing *ast.Def, receiverType types.DataType) ([]*ast.Def, error) {
	var l []*ast.Def

	if call.IsSuperCall {
		if enclosing == nil || enclosing.Owner == nil {
			return nil, &UndefinedMethod{Name: call.Name}
		}

		call.Args, call.NamedArgs = reconstructSuperArgs(enclosing, r.Registry)
		l = r.Defs.LookupAncestor(enclosing.Owner, call.Name)
	} else {
		l = r.Defs.Lookup(receiverType, call.Name)
	}

	if len(l) == 0 {
		return nil, &UndefinedMethod{Name: call.Name}
	}

	return l, nil
}

// reconstructSuperArgs rebuilds an implicit super call's argument list from
// the enclosing method's own formals: each non-splat formal yields a
// positional Ident reference to itself, and a splat formal yields a Splat
// wrapper over the formal's own tuple variable (spec.md §4.G "Super-call
// forwarding"). Each synthesized Ident's Type is stamped from its formal's
// own restriction, when one is declared, since nothing else names that
// local variable's type for the external TypeOf collaborator to read.
func reconstructSuperArgs(enclosing *ast.Def, reg *types.Registry) ([]ast.Expr, []*ast.NamedArg) {
	args := make([]ast.Expr, 0, len(enclosing.Args))

	for i, arg := range enclosing.Args {
		ref := &ast.Ident{Name: arg.Name}
		if arg.Restriction != nil {
			ref.Type = reg.Intern(arg.Restriction)
		}

		if i == enclosing.SplatIndex {
			args = append(args, &ast.Splat{Operand: ref})
		} else {
			args = append(args, ref)
		}
	}

	return args, nil
}

// canonicalizeArgs rewrites a winning candidate's bindings back into a flat
// positional expression vector, in the def's declaration order -- named
// args and defaults are resolved away, as spec.md §4.G step 5 requires.
//
// A binding absorbed from a call-site Splat carries a FromSplat source
// naming which tuple element it stands in for: every such binding shares
// the same underlying Expr (the splat's operand), so reusing it verbatim
// would canonicalize to the whole tuple repeated once per absorbed
// element instead of each element in turn. Those bindings are rewritten
// into a distinct ast.TupleIndex per element instead.
func canonicalizeArgs(bindings []Binding) []ast.Expr {
	args := make([]ast.Expr, 0, len(bindings))

	for _, b := range bindings {
		if b.IsDefault {
			args = append(args, b.Formal.Default)
			continue
		}

		if b.Actual.FromSplat != nil {
			args = append(args, &ast.TupleIndex{
				Operand: b.Actual.FromSplat.Operand,
				Index:   b.Actual.FromSplat.ElemIndex,
			})
			continue
		}

		args = append(args, b.Actual.Expr)
	}

	return args
}

func (r *Resolver) fail(call *ast.Call, err error) error {
	call.State = ast.CallFailed
	call.Diagnostic = err
	return err
}
