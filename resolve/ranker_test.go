package resolve

import (
	"testing"

	"onyx/ast"
	"onyx/types"

	"github.com/stretchr/testify/require"
)

func identicalDefs(name string, owner1, owner2 *types.NamedType) (*ast.Def, *ast.Def) {
	shape := func(owner *types.NamedType) *ast.Def {
		return &ast.Def{
			Name:       name,
			SplatIndex: -1,
			Args:       []*ast.Arg{{Name: "x", Restriction: types.PrimInt32}},
			Owner:      owner,
		}
	}
	return shape(owner1), shape(owner2)
}

func TestRankNoMatches(t *testing.T) {
	_, err := Rank("foo", nil, []*ast.Def{{Name: "foo"}}, []string{"wrong arity"})
	require.Error(t, err)
	var noMatch *NoOverloadMatches
	require.ErrorAs(t, err, &noMatch)
}

// TestRankRedefinitionSameOwner covers invariant 4: defining the same
// signature twice on the same owner binds the later one; the earlier
// never participates.
func TestRankRedefinitionSameOwner(t *testing.T) {
	owner := &types.NamedType{TypeName: "Widget"}
	early, late := identicalDefs("run", owner, owner)
	early.SetDeclOrder(0)
	late.SetDeclOrder(1)

	sameScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{types.PrimInt32}}
	matches := []*Candidate{
		{Def: early, Score: sameScore},
		{Def: late, Score: sameScore},
	}

	winners, err := Rank("run", matches, nil, nil)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	require.Same(t, late, winners[0].Def)
}

// TestRankDispatchAcrossOwners covers the dispatch case: identical
// signatures on distinct owner types in an ancestor chain are all
// returned as winners rather than reported ambiguous.
func TestRankDispatchAcrossOwners(t *testing.T) {
	base := &types.NamedType{TypeName: "Animal"}
	derived := &types.NamedType{TypeName: "Dog", Ancestors: []*types.NamedType{base}}

	baseDef, derivedDef := identicalDefs("speak", base, derived)

	sameScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{types.PrimInt32}}
	matches := []*Candidate{
		{Def: baseDef, Score: sameScore},
		{Def: derivedDef, Score: sameScore},
	}

	winners, err := Rank("speak", matches, nil, nil)
	require.NoError(t, err)
	require.Len(t, winners, 2)
}

// TestRankAmbiguousNonIdenticalTie covers the Open Question resolution: a
// tie between non-identical signatures reports Ambiguous rather than
// picking a winner.
func TestRankAmbiguousNonIdenticalTie(t *testing.T) {
	ownerA := &types.NamedType{TypeName: "A"}
	ownerB := &types.NamedType{TypeName: "B"}

	defA := &ast.Def{Name: "foo", SplatIndex: -1, Args: []*ast.Arg{{Name: "x", Restriction: types.PrimInt32}}, Owner: ownerA}
	defB := &ast.Def{Name: "foo", SplatIndex: -1, Args: []*ast.Arg{{Name: "y", Restriction: types.PrimString}}, Owner: ownerB}

	sameScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{types.PrimInt32}}
	matches := []*Candidate{
		{Def: defA, Score: sameScore},
		{Def: defB, Score: sameScore},
	}

	_, err := Rank("foo", matches, nil, nil)
	require.Error(t, err)
	var ambiguous *Ambiguous
	require.ErrorAs(t, err, &ambiguous)
}

func TestCompareOrdering(t *testing.T) {
	require.Equal(t, 1, Compare(Score{RestrictedSlots: 2}, Score{RestrictedSlots: 1}))
	require.Equal(t, -1, Compare(Score{HasSplat: true}, Score{HasSplat: false}))
	require.Equal(t, 1, Compare(Score{SplatAbsorbed: 1}, Score{SplatAbsorbed: 2}))
	require.Equal(t, 0, Compare(Score{}, Score{}))
}

// TestCompareRestrictionsPrefersSubtypeOnSameSlot covers spec.md §4.E's
// "stricter restriction outranks a looser one on the same slot" rule
// directly: def foo(x: Dog) beats def foo(x: Animal) for a call passing a
// Dog, even though both have one restricted slot.
func TestCompareRestrictionsPrefersSubtypeOnSameSlot(t *testing.T) {
	animal := &types.NamedType{TypeName: "Animal"}
	dog := &types.NamedType{TypeName: "Dog", Ancestors: []*types.NamedType{animal}}

	dogScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{dog}}
	animalScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{animal}}

	require.Equal(t, 1, Compare(dogScore, animalScore))
	require.Equal(t, -1, Compare(animalScore, dogScore))
}

func TestCompareRestrictionsUnrelatedTypesAreATie(t *testing.T) {
	dog := &types.NamedType{TypeName: "Dog"}
	cat := &types.NamedType{TypeName: "Cat"}

	dogScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{dog}}
	catScore := Score{RestrictedSlots: 1, Restrictions: []types.DataType{cat}}

	require.Equal(t, 0, Compare(dogScore, catScore))
}
