package resolve

import (
	"testing"

	"onyx/ast"
	"onyx/types"

	"github.com/stretchr/testify/require"
)

func TestPreprocessNamedArgDuplicate(t *testing.T) {
	reg := types.NewRegistry()
	v1 := lit(ast.LitInt, "1")
	v2 := lit(ast.LitInt, "2")

	call := &ast.Call{
		Name: "foo",
		NamedArgs: []*ast.NamedArg{
			{Name: "x", Value: v1},
			{Name: "x", Value: v2},
		},
	}

	tv := stubTypeOf{}
	_, _, err := Preprocess(call, tv, reg)
	require.Error(t, err)
	var dup *NamedArgDuplicate
	require.ErrorAs(t, err, &dup)
}

func TestPreprocessSplatOnNonTuple(t *testing.T) {
	reg := types.NewRegistry()
	int32ID := reg.Intern(types.PrimInt32)

	operand := &ast.Ident{Name: "n"}
	tv := stubTypeOf{operand: int32ID}

	call := &ast.Call{Name: "foo", Args: []ast.Expr{&ast.Splat{Operand: operand}}}
	_, _, err := Preprocess(call, tv, reg)
	require.Error(t, err)
	var notATuple *NotATuple
	require.ErrorAs(t, err, &notATuple)
	require.Equal(t, 0, notATuple.Slot)
}

func TestPreprocessSplatUnionOfDistinctShapes(t *testing.T) {
	reg := types.NewRegistry()
	unionID := reg.Intern(types.UnionType{
		types.TupleType{types.PrimInt32},
		types.TupleType{types.PrimInt32, types.PrimInt32},
	})

	operand := &ast.Ident{Name: "u"}
	tv := stubTypeOf{operand: unionID}

	call := &ast.Call{Name: "foo", Args: []ast.Expr{&ast.Splat{Operand: operand}}}
	_, _, err := Preprocess(call, tv, reg)
	require.Error(t, err)
	var splatUnion *SplatUnion
	require.ErrorAs(t, err, &splatUnion)
}

func TestPreprocessSplatUnionOfSingleShape(t *testing.T) {
	reg := types.NewRegistry()
	unionID := reg.Intern(types.UnionType{
		types.TupleType{types.PrimInt32, types.PrimFloat64},
		types.TupleType{types.PrimInt32, types.PrimFloat64},
	})

	operand := &ast.Ident{Name: "u"}
	tv := stubTypeOf{operand: unionID}

	call := &ast.Call{Name: "foo", Args: []ast.Expr{&ast.Splat{Operand: operand}}}
	e, _, err := Preprocess(call, tv, reg)
	require.NoError(t, err)
	require.Len(t, e, 2)
}
