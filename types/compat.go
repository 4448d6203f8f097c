package types

// CompatibleWith answers the second external predicate from spec.md §6:
// does the type named by actual satisfy the restriction restriction?  A nil
// restriction always accepts (an unrestricted formal accepts anything),
// matching the matcher's step 5.
//
// Grounded on bootstrap/typing/compare.go's unwrap-then-compare style:
// aliases are stripped on both sides, and a restriction against a union
// accepts if actual matches at least one member (crystal-family languages
// treat `x : Int32 | String` restrictions as membership tests, not full
// unification).
func CompatibleWith(actual, restriction DataType) bool {
	if restriction == nil {
		return true
	}

	restriction = RemoveAlias(restriction)
	actual = RemoveAlias(actual)

	if aut, ok := actual.(UnionType); ok {
		// An actual union satisfies a restriction only if every branch
		// does -- matches Crystal's rule that a union-typed value can only
		// be passed where every possible runtime type is accepted.
		for _, member := range aut {
			if !CompatibleWith(member, restriction) {
				return false
			}
		}
		return true
	}

	if rut, ok := restriction.(UnionType); ok {
		for _, member := range rut {
			if CompatibleWith(actual, member) {
				return true
			}
		}
		return false
	}

	if rnamed, ok := restriction.(*NamedType); ok {
		if anamed, ok := actual.(*NamedType); ok {
			return anamed.IsSubtypeOf(rnamed)
		}
		return false
	}

	if rnil, ok := restriction.(*NilableType); ok {
		if actual.equals(PrimType(PrimNil)) {
			return true
		}
		return CompatibleWith(actual, rnil.Elem)
	}

	return Equiv(actual, restriction)
}

// RestrictionOf returns the DataType attached to a formal parameter's
// restriction expression.  In Onyx's simplified model a restriction is
// already a resolved DataType by the time the matcher runs (parsing and
// restriction-expression evaluation are external collaborators, per
// spec.md §1), so this is an identity accessor kept as a named predicate to
// match the external interface named in spec.md §6.
func RestrictionOf(restriction DataType) DataType {
	return restriction
}

// Specificity reports a partial order between two restrictions on the same
// formal slot, used by the ranker (spec.md §4.F): a strictly more specific
// restriction returns 1, a strictly less specific one returns -1, and
// incomparable or equal restrictions return 0.
func Specificity(a, b DataType) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	aNamed, aOK := RemoveAlias(a).(*NamedType)
	bNamed, bOK := RemoveAlias(b).(*NamedType)

	if aOK && bOK {
		switch {
		case aNamed.equals(bNamed):
			return 0
		case aNamed.IsSubtypeOf(bNamed):
			return 1
		case bNamed.IsSubtypeOf(aNamed):
			return -1
		default:
			return 0
		}
	}

	if Equiv(a, b) {
		return 0
	}

	return 0
}
