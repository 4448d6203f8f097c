package resolve

import (
	"testing"

	"onyx/ast"

	"github.com/stretchr/testify/require"
)

func splatDef(argNames []string, splatIndex int) *ast.Def {
	args := make([]*ast.Arg, len(argNames))
	for i, name := range argNames {
		args[i] = &ast.Arg{Name: name}
	}
	return &ast.Def{Name: "foo", Args: args, SplatIndex: splatIndex}
}

// TestPartitionFourArgSplat covers S7: def foo(a1,a2,*a3,a4) against 6
// actuals -- before pairs a1/a2 positionally, at absorbs three actuals
// into a3, after pairs the trailing a4.
func TestPartitionFourArgSplat(t *testing.T) {
	def := splatDef([]string{"a1", "a2", "a3", "a4"}, 2)

	part, err := Partition(def, 6)
	require.NoError(t, err)

	require.Len(t, part.Before, 2)
	require.Equal(t, Pairing{Formal: def.Args[0], FormalIndex: 0, ActualIndex: 0}, part.Before[0])
	require.Equal(t, Pairing{Formal: def.Args[1], FormalIndex: 1, ActualIndex: 1}, part.Before[1])

	require.Len(t, part.At, 3)
	for i, actualIdx := range []int{2, 3, 4} {
		require.Equal(t, def.Args[2], part.At[i].Formal)
		require.Equal(t, 2, part.At[i].FormalIndex)
		require.Equal(t, actualIdx, part.At[i].ActualIndex)
	}

	require.Len(t, part.After, 1)
	require.Equal(t, Pairing{Formal: def.Args[3], FormalIndex: 3, ActualIndex: 5}, part.After[0])

	require.Equal(t, 6, part.Len())
}

// TestPartitionNoSplatExactArity covers the partitioner's side of universal
// invariant 1: a splat-less def accepts |E| == n and rejects |E| > n. A
// shortfall is not rejected here, since named args may still fill the
// trailing formals; Match's arity check rejects it.
func TestPartitionNoSplatExactArity(t *testing.T) {
	def := splatDef([]string{"a", "b"}, -1)

	part, err := Partition(def, 2)
	require.NoError(t, err)
	require.Len(t, part.Before, 2)
	require.Empty(t, part.At)
	require.Empty(t, part.After)

	_, err = Partition(def, 3)
	require.Error(t, err)
	var wrongArity *WrongArity
	require.ErrorAs(t, err, &wrongArity)
}

// TestPartitionSplatMinArity covers universal invariant 2: a def with a
// splat at index s and no defaults accepts iff |E| >= n-1.
func TestPartitionSplatMinArity(t *testing.T) {
	def := splatDef([]string{"args"}, 0)

	part, err := Partition(def, 0)
	require.NoError(t, err)
	require.Empty(t, part.Before)
	require.Empty(t, part.At)
	require.Empty(t, part.After)

	part, err = Partition(def, 3)
	require.NoError(t, err)
	require.Len(t, part.At, 3)
}

func TestPartitionShortfallAbsorbedByTrailingDefault(t *testing.T) {
	def := splatDef([]string{"a", "b"}, 1)
	def.Args[0].Default = &ast.Literal{Kind: ast.LitInt, Value: "0"}

	// n=2, s=1: with 0 actuals, atCount = 0 - (2-1) = -1, a shortfall of 1
	// that the trailing default on a (immediately before the splat) covers.
	part, err := Partition(def, 0)
	require.NoError(t, err)
	require.Empty(t, part.Before)
	require.Empty(t, part.At)
}
