package cmd

import (
	"onyx/ast"
	"onyx/depm"
	"onyx/report"
	"onyx/resolve"
	"onyx/types"
)

// literalTypeOf is a minimal resolve.TypeOf backed only by the type
// annotations literals and identifiers already carry. It stands in for
// the general inference engine at the boundary the semantic core draws
// between the type system and the matcher (resolve.TypeOf here,
// noBodyTyper below): CheckModule only exercises call resolution, not
// full program type inference.
type literalTypeOf struct{}

func (literalTypeOf) TypeOf(expr ast.Expr) (types.TypeID, bool) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Type, true
	case *ast.Ident:
		return e.Type, true
	default:
		return 0, false
	}
}

// noBodyTyper skips full body type inference: CheckModule only reports
// call-resolution failures, so a resolved call's return type is never
// needed by anything downstream of it here.
type noBodyTyper struct{}

func (noBodyTyper) TypeBody(def *ast.Def, bindings []resolve.Binding) (types.TypeID, error) {
	return 0, nil
}

// CheckModule resolves every call reachable from every declared def's body
// across every package in mod, recording a diagnostic for each one the
// resolver rejects.
func CheckModule(mod *depm.Module, reporter *report.Reporter) {
	tv := literalTypeOf{}

	for _, pkg := range mod.Packages {
		r := resolve.NewResolver(pkg, tv, mod.Registry, noBodyTyper{})

		checkTable(pkg.TopLevel, r, reporter)
		for _, tbl := range pkg.AllMethods() {
			checkTable(tbl, r, reporter)
		}
	}
}

func checkTable(tbl *depm.DefTable, r *resolve.Resolver, reporter *report.Reporter) {
	for _, defs := range tbl.All() {
		for _, def := range defs {
			checkExpr(def.Body, def, r, reporter)
		}
	}
}

// checkExpr walks the small closed AST looking for Call nodes to resolve.
func checkExpr(expr ast.Expr, enclosing *ast.Def, r *resolve.Resolver, reporter *report.Reporter) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *ast.Call:
		var receiverType types.DataType
		if e.Receiver != nil {
			checkExpr(e.Receiver, enclosing, r, reporter)
			if tid, ok := r.Types.TypeOf(e.Receiver); ok {
				receiverType = r.Registry.Lookup(tid)
			}
		} else if enclosing != nil && enclosing.Owner != nil {
			receiverType = enclosing.Owner
		}

		if err := r.Resolve(e, enclosing, receiverType); err != nil {
			reporter.Report(report.NewDiagnostic("", e.Pos(), err.Error()))
		}

		for _, a := range e.Args {
			checkExpr(a, enclosing, r, reporter)
		}
		if e.Block != nil {
			checkExpr(e.Block, enclosing, r, reporter)
		}
	case *ast.TupleLiteral:
		for _, elem := range e.Elements {
			checkExpr(elem, enclosing, r, reporter)
		}
	case *ast.Splat:
		checkExpr(e.Operand, enclosing, r, reporter)
	case *ast.FieldAccess:
		checkExpr(e.Receiver, enclosing, r, reporter)
	case *ast.TupleIndex:
		checkExpr(e.Operand, enclosing, r, reporter)
	}
}
