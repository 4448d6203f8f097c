// Package codegen lowers a package's declaration space to LLVM IR
// module-level function declarations, with no function bodies. Bodies require the general type-inference and
// control-flow lowering the semantic core here does not implement.
package codegen

import (
	"fmt"

	"onyx/ast"
	"onyx/depm"
	"onyx/types"

	"github.com/llir/llvm/ir"
	lltypes "github.com/llir/llvm/ir/types"
)

// EmitDeclarations builds an LLVM IR module containing a declaration for
// every top-level function and every method in pkg.  A named type that
// appears in one of those signatures lowers to a pointer to an identified
// struct type named after it; named types the package declares but no
// signature mentions are not visited.  Only each def's signature is read:
// call sites and their TargetDefs are not consulted.
func EmitDeclarations(pkg *depm.Package) *ir.Module {
	m := ir.NewModule()

	structs := map[string]*lltypes.StructType{}
	for name, all := range pkg.TopLevel.All() {
		for _, def := range all {
			declareFunc(m, def, structs, name)
		}
	}

	for _, tbl := range pkg.AllMethods() {
		for name, all := range tbl.All() {
			for _, def := range all {
				declareFunc(m, def, structs, name)
			}
		}
	}

	return m
}

func declareFunc(m *ir.Module, def *ast.Def, structs map[string]*lltypes.StructType, fallbackName string) {
	name := def.Name
	if name == "" {
		name = fallbackName
	}

	retType := mapType(def.ReturnType, structs)

	params := make([]*ir.Param, 0, len(def.Args))
	for i, arg := range def.Args {
		pname := arg.Name
		if pname == "" {
			pname = fmt.Sprintf("arg%d", i)
		}

		var ptype lltypes.Type
		if i == def.SplatIndex {
			// A splat parameter lowers to an opaque pointer: its element
			// count is only known at each call site, which the resolver
			// has already flattened away by the time codegen runs.
			ptype = lltypes.NewPointer(lltypes.I8)
		} else {
			ptype = mapType(arg.Restriction, structs)
		}

		params = append(params, ir.NewParam(pname, ptype))
	}

	m.NewFunc(mangle(def), retType, params...)
}

// mangle produces a stable, owner-qualified symbol name for a def, the way
// a method dispatch table needs one distinct declaration per (owner, name,
// signature) triple.
func mangle(def *ast.Def) string {
	if def.Owner == nil {
		return def.Repr()
	}
	return def.Owner.Repr() + "." + def.Repr()
}

// mapType lowers a DataType to its LLVM representation. Restrictions are
// optional throughout the semantic core, so nil maps to a generic opaque
// pointer -- the def accepts any type in that slot and codegen cannot
// commit to a narrower representation without the inference pass this
// package does not run.
func mapType(dt types.DataType, structs map[string]*lltypes.StructType) lltypes.Type {
	if dt == nil {
		return lltypes.NewPointer(lltypes.I8)
	}

	switch t := types.RemoveAlias(dt).(type) {
	case types.PrimType:
		return mapPrim(t)
	case types.TupleType:
		elems := make([]lltypes.Type, len(t))
		for i, e := range t {
			elems[i] = mapType(e, structs)
		}
		return lltypes.NewStruct(elems...)
	case *types.NilableType:
		return lltypes.NewPointer(mapType(t.Elem, structs))
	case types.UnionType:
		// A union has no single LLVM shape without a discriminant tag,
		// which the semantic core does not lay out; represented as an
		// opaque pointer until codegen grows a tagged-union lowering.
		return lltypes.NewPointer(lltypes.I8)
	case *types.NamedType:
		if st, ok := structs[t.Repr()]; ok {
			return lltypes.NewPointer(st)
		}
		st := lltypes.NewStruct()
		st.TypeName = t.Repr()
		structs[t.Repr()] = st
		return lltypes.NewPointer(st)
	default:
		return lltypes.NewPointer(lltypes.I8)
	}
}

func mapPrim(pt types.PrimType) lltypes.Type {
	switch pt {
	case types.PrimInt32:
		return lltypes.I32
	case types.PrimInt64:
		return lltypes.I64
	case types.PrimFloat64:
		return lltypes.Double
	case types.PrimBool:
		return lltypes.I1
	case types.PrimChar:
		return lltypes.I8
	case types.PrimString:
		return lltypes.NewPointer(lltypes.I8)
	default:
		return lltypes.Void
	}
}
