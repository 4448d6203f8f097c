package resolve

import (
	"fmt"

	"onyx/ast"
	"onyx/types"
)

// TypeOf is the boundary to the external type-inference service (spec.md
// §6, "Type system → matcher"): the preprocessor and matcher only ever ask
// it for the currently known type of an expression.
type TypeOf interface {
	TypeOf(expr ast.Expr) (types.TypeID, bool)
}

// EffectiveArg is one element of the effective argument vector E produced
// by the preprocessor (spec.md §4.C).  Most EffectiveArgs wrap an original
// expression untouched; one produced by expanding a call-site Splat
// instead carries a SplatSource recording which tuple element it stands
// in for, so that later codegen "reads element k of the operand tuple"
// exactly as spec.md §4.C step 1 requires.
type EffectiveArg struct {
	Expr      ast.Expr
	Type      types.TypeID
	FromSplat *SplatSource
}

// SplatSource identifies a pseudo-argument synthesized from a call-site
// Splat: its origin is element ElemIndex of Operand's tuple type.
type SplatSource struct {
	Operand   ast.Expr
	ElemIndex int
}

// Preprocess implements component C: it resolves call-site splats (tuple
// expansion) and validates named-argument keys for duplicates, returning
// the effective argument vector E and the (deduplicated) named-arg list N.
//
// Grounded on bootstrap/depm/resolve.go's validate-then-carry-forward
// control flow.
func Preprocess(call *ast.Call, tv TypeOf, reg *types.Registry) ([]*EffectiveArg, []*ast.NamedArg, error) {
	var e []*EffectiveArg

	for i, a := range call.Args {
		splat, ok := a.(*ast.Splat)
		if !ok {
			tid, ok := tv.TypeOf(a)
			if !ok {
				return nil, nil, fmt.Errorf("internal error: unresolved type for argument %d to '%s'", i, call.Name)
			}
			e = append(e, &EffectiveArg{Expr: a, Type: tid})
			continue
		}

		tid, ok := tv.TypeOf(splat.Operand)
		if !ok {
			return nil, nil, fmt.Errorf("internal error: unresolved type for splat operand at argument %d to '%s'", i, call.Name)
		}

		dt := reg.Lookup(tid)
		elems, err := splatElementTypes(dt)
		if err != nil {
			if nat, ok := err.(*NotATuple); ok {
				nat.Slot = i
			}
			return nil, nil, err
		}

		for k, elemType := range elems {
			e = append(e, &EffectiveArg{
				Expr:      splat.Operand,
				Type:      reg.Intern(elemType),
				FromSplat: &SplatSource{Operand: splat.Operand, ElemIndex: k},
			})
		}
	}

	seen := make(map[string]struct{}, len(call.NamedArgs))
	for _, na := range call.NamedArgs {
		if _, dup := seen[na.Name]; dup {
			return nil, nil, &NamedArgDuplicate{Name: na.Name}
		}
		seen[na.Name] = struct{}{}
	}

	return e, call.NamedArgs, nil
}

// splatElementTypes fetches the element types a call-site splat expands
// into: a plain tuple type expands into its own elements; a union is
// accepted only if exactly one of its members is a tuple shape (in which
// case that shape's elements are used); anything else is NotATuple, and a
// union straddling more than one tuple shape is SplatUnion.
func splatElementTypes(dt types.DataType) ([]types.DataType, error) {
	raw := types.RemoveAlias(dt)

	if tt, ok := raw.(types.TupleType); ok {
		return []types.DataType(tt), nil
	}

	if ut, ok := raw.(types.UnionType); ok {
		var shape []types.DataType
		shapes := 0

		for _, member := range ut {
			if tt, ok := types.RemoveAlias(member).(types.TupleType); ok {
				if shapes == 0 || tt.Repr() != types.TupleType(shape).Repr() {
					shapes++
					shape = []types.DataType(tt)
				}
			}
		}

		switch {
		case shapes == 0:
			return nil, &NotATuple{TypeName: dt.Repr()}
		case shapes > 1:
			return nil, &SplatUnion{TypeName: dt.Repr()}
		default:
			return shape, nil
		}
	}

	return nil, &NotATuple{TypeName: dt.Repr()}
}
