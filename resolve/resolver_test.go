package resolve

import (
	"testing"

	"onyx/ast"
	"onyx/types"

	"github.com/stretchr/testify/require"
)

// fieldTypeOf reads the Type annotation already attached to a Literal or
// Ident node, the same minimal stand-in for a real inference engine that
// cmd.literalTypeOf uses.
type fieldTypeOf struct{}

func (fieldTypeOf) TypeOf(expr ast.Expr) (types.TypeID, bool) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Type, true
	case *ast.Ident:
		return e.Type, true
	default:
		return 0, false
	}
}

// fakeDefLookup is a minimal resolve.DefLookup backed by two flat maps,
// letting resolver tests avoid depending on the depm package.
type fakeDefLookup struct {
	byName        map[string][]*ast.Def
	ancestorsOnly map[string][]*ast.Def
}

func (f fakeDefLookup) Lookup(receiverType types.DataType, name string) []*ast.Def {
	return f.byName[name]
}

func (f fakeDefLookup) LookupAncestor(owner *types.NamedType, name string) []*ast.Def {
	return f.ancestorsOnly[name]
}

func TestResolverSuperCallForwarding(t *testing.T) {
	reg := types.NewRegistry()

	base := &types.NamedType{TypeName: "Animal"}
	derived := &types.NamedType{TypeName: "Dog", Ancestors: []*types.NamedType{base}}

	baseGreet := &ast.Def{
		Name:       "greet",
		SplatIndex: -1,
		Owner:      base,
		Args:       []*ast.Arg{{Name: "x", Restriction: types.PrimInt32}},
	}
	derivedGreet := &ast.Def{
		Name:       "greet",
		SplatIndex: -1,
		Owner:      derived,
		Args:       []*ast.Arg{{Name: "x", Restriction: types.PrimInt32}},
	}

	lookup := fakeDefLookup{
		byName:        map[string][]*ast.Def{"greet": {derivedGreet}},
		ancestorsOnly: map[string][]*ast.Def{"greet": {baseGreet}},
	}

	r := NewResolver(lookup, fieldTypeOf{}, reg, nil)

	call := &ast.Call{Name: "greet", IsSuperCall: true}

	err := r.Resolve(call, derivedGreet, derived)
	require.NoError(t, err)
	require.Equal(t, ast.CallTyped, call.State)
	require.Len(t, call.TargetDefs, 1)
	require.Same(t, baseGreet, call.TargetDefs[0])
	require.Len(t, call.Args, 1)

	forwarded, ok := call.Args[0].(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "x", forwarded.Name)
}

func TestResolverUndefinedMethod(t *testing.T) {
	reg := types.NewRegistry()
	lookup := fakeDefLookup{byName: map[string][]*ast.Def{}}
	r := NewResolver(lookup, fieldTypeOf{}, reg, nil)

	call := &ast.Call{Name: "nope"}
	err := r.Resolve(call, nil, nil)
	require.Error(t, err)
	var undef *UndefinedMethod
	require.ErrorAs(t, err, &undef)
	require.Equal(t, ast.CallFailed, call.State)
	require.Equal(t, err, call.Diagnostic)
}

// TestResolverCanonicalizesCallSiteSplatToDistinctElements covers S4 end
// to end: output(x, y) called as output(*b) where b : (Int32, Int32) must
// canonicalize to two distinct per-element references, not the shared
// tuple expression twice.
func TestResolverCanonicalizesCallSiteSplatToDistinctElements(t *testing.T) {
	reg := types.NewRegistry()
	tupleID := reg.Intern(types.TupleType{types.PrimInt32, types.PrimInt32})

	def := &ast.Def{
		Name:       "output",
		SplatIndex: -1,
		Args:       []*ast.Arg{{Name: "x"}, {Name: "y"}},
	}

	lookup := fakeDefLookup{byName: map[string][]*ast.Def{"output": {def}}}
	r := NewResolver(lookup, fieldTypeOf{}, reg, nil)

	bIdent := &ast.Ident{Name: "b", Type: tupleID}
	call := &ast.Call{Name: "output", Args: []ast.Expr{&ast.Splat{Operand: bIdent}}}

	err := r.Resolve(call, nil, nil)
	require.NoError(t, err)
	require.Len(t, call.Args, 2)

	first, ok := call.Args[0].(*ast.TupleIndex)
	require.True(t, ok)
	require.Same(t, bIdent, first.Operand)
	require.Equal(t, 0, first.Index)

	second, ok := call.Args[1].(*ast.TupleIndex)
	require.True(t, ok)
	require.Same(t, bIdent, second.Operand)
	require.Equal(t, 1, second.Index)

	require.NotSame(t, first, second)
}

func TestResolverCanonicalizesNamedArgsToPositional(t *testing.T) {
	reg := types.NewRegistry()
	int32ID := reg.Intern(types.PrimInt32)

	def := &ast.Def{
		Name:       "make",
		SplatIndex: -1,
		Args: []*ast.Arg{
			{Name: "a", Restriction: types.PrimInt32},
			{Name: "b", Restriction: types.PrimInt32},
		},
	}

	lookup := fakeDefLookup{byName: map[string][]*ast.Def{"make": {def}}}
	r := NewResolver(lookup, fieldTypeOf{}, reg, nil)

	bVal := &ast.Literal{Kind: ast.LitInt, Value: "2", Type: int32ID}
	aVal := &ast.Literal{Kind: ast.LitInt, Value: "1", Type: int32ID}

	call := &ast.Call{
		Name: "make",
		NamedArgs: []*ast.NamedArg{
			{Name: "b", Value: bVal},
			{Name: "a", Value: aVal},
		},
	}

	err := r.Resolve(call, nil, nil)
	require.NoError(t, err)
	require.Empty(t, call.NamedArgs)
	require.Equal(t, []ast.Expr{aVal, bVal}, call.Args)
}
