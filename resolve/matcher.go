package resolve

import (
	"onyx/ast"
	"onyx/types"
)

// Binding pairs a def's formal Arg with either a bound EffectiveArg or, for
// a formal filled by its default expression, nil (IsDefault is then true).
type Binding struct {
	Formal    *ast.Arg
	Actual    *EffectiveArg
	IsDefault bool

	// SplatElem is true when this binding is one of possibly several
	// bound to the same splat formal, one per absorbed actual.
	SplatElem bool
}

// Score is a candidate's specificity, compared by the ranker (component
// F). Field order mirrors the priority order spec.md §4.E lists:
// restricted-slot count, then specificity of those restrictions slot by
// slot against the competing candidate, then splat presence, then
// splat-absorbed count.
type Score struct {
	RestrictedSlots int

	// Restrictions holds each bound formal's restriction expression (nil
	// for an unrestricted or default-bound slot), in the same bound-actual
	// order as Candidate.Bindings, so that two candidates for the same
	// call can be compared position by position -- a single candidate's
	// restriction is only ever meaningful relative to another's on the
	// same slot, never in isolation.
	Restrictions []types.DataType

	HasSplat      bool
	SplatAbsorbed int
	DeclOrder     int
}

// Compare returns 1 if a is strictly more specific than b, -1 if b is
// strictly more specific, and 0 if the ordering in spec.md §4.E does not
// distinguish them (leaving redefinition/ambiguity handling to the
// ranker -- see DESIGN.md's note on the resolved tie-breaking Open
// Question).
func Compare(a, b Score) int {
	if a.RestrictedSlots != b.RestrictedSlots {
		return sign(a.RestrictedSlots - b.RestrictedSlots)
	}

	if c := compareRestrictions(a.Restrictions, b.Restrictions); c != 0 {
		return c
	}

	if a.HasSplat != b.HasSplat {
		if a.HasSplat {
			return -1
		}
		return 1
	}

	if a.SplatAbsorbed != b.SplatAbsorbed {
		// Fewer absorbed actuals is more specific.
		return sign(b.SplatAbsorbed - a.SplatAbsorbed)
	}

	return 0
}

// compareRestrictions sums types.Specificity slot by slot over the
// shorter of the two restriction lists, then reduces the sum to a sign --
// this is the actual pairwise "stricter restriction on the same slot
// outranks a looser one" comparison spec.md §4.E requires; a restriction
// only has a specificity relative to what the competing candidate
// declares on that same slot.
func compareRestrictions(a, b []types.DataType) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	total := 0
	for i := 0; i < n; i++ {
		total += types.Specificity(a[i], b[i])
	}

	return sign(total)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Candidate is the transient object the matcher produces for one def under
// consideration for one call (spec.md §3): a matching def, its formal-to-
// actual bindings, and its specificity score.
type Candidate struct {
	Def      *ast.Def
	Bindings []Binding
	Score    Score
}

// Match implements component E: it decides whether def accepts the
// effective argument vector e plus named args n, under the given block
// presence, and if so returns the resulting Candidate.
//
// Grounded on bootstrap/typing/overloads.go's overloadSet.Prune/Finalize
// two-phase model (filter, then score) and
// bootstrap/walk/oper_overloads.go's arity-then-restriction sequencing.
func Match(def *ast.Def, e []*EffectiveArg, n []*ast.NamedArg, hasBlock bool, tv TypeOf, reg *types.Registry) (*Candidate, error) {
	// Step 1: arity check.
	minSize, maxSize := arityRange(def)
	total := len(e) + len(n)
	if total < minSize || (maxSize >= 0 && total > maxSize) {
		return nil, &WrongArity{Name: def.Name, Given: total, Expected: ExpectedRange{Min: minSize, Max: maxSize}}
	}

	// Step 2: partition.
	part, err := Partition(def, len(e))
	if err != nil {
		return nil, err
	}

	bindings := make(map[int]Binding, len(def.Args))
	var atBindings []Binding

	for _, p := range part.Before {
		bindings[p.FormalIndex] = Binding{Formal: p.Formal, Actual: e[p.ActualIndex]}
	}
	for _, p := range part.After {
		bindings[p.FormalIndex] = Binding{Formal: p.Formal, Actual: e[p.ActualIndex]}
	}
	for _, p := range part.At {
		b := Binding{Formal: p.Formal, Actual: e[p.ActualIndex], SplatElem: true}
		bindings[p.FormalIndex] = b // last write wins for the map slot; atBindings keeps every element
		atBindings = append(atBindings, b)
	}

	// Step 3: bind named args.
	for _, na := range n {
		idx, formal := findFormal(def, na.Name)
		if formal == nil {
			return nil, &NamedArgUnknown{Name: na.Name}
		}

		if def.HasSplat() && idx == def.SplatIndex {
			return nil, &NamedArgCoversSplat{Name: na.Name}
		}

		if _, already := bindings[idx]; already {
			return nil, &NamedArgCoversSplat{Name: na.Name}
		}

		actual := &EffectiveArg{Expr: na.Value}
		if tid, ok := tv.TypeOf(na.Value); ok {
			actual.Type = tid
		}

		bindings[idx] = Binding{Formal: formal, Actual: actual}
	}

	// Step 4: bind defaults for any formal before the splat still unbound.
	limit := len(def.Args)
	if def.HasSplat() {
		limit = def.SplatIndex
	}

	var missing []string
	for i := 0; i < limit; i++ {
		if _, ok := bindings[i]; ok {
			continue
		}

		arg := def.Args[i]
		if arg.HasDefault() {
			bindings[i] = Binding{Formal: arg, IsDefault: true}
		} else {
			missing = append(missing, arg.Name)
		}
	}

	// Any required formal after the splat left unbound is also missing
	// (defaults never occur there, per spec.md §3).
	for i := limit; i < len(def.Args); i++ {
		if i == def.SplatIndex {
			continue
		}
		if _, ok := bindings[i]; !ok {
			missing = append(missing, def.Args[i].Name)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingArg{Names: missing}
	}

	// Step 5: restriction check.
	score := Score{HasSplat: def.HasSplat(), DeclOrder: def.DeclOrder()}
	ordered := make([]Binding, 0, len(def.Args))
	restrictions := make([]types.DataType, 0, len(def.Args))

	for i, arg := range def.Args {
		if i == def.SplatIndex {
			for _, b := range atBindings {
				if !checkRestriction(b, reg) {
					return nil, restrictionMismatch(def, b, reg)
				}
				score.SplatAbsorbed++
				restrictions = append(restrictions, arg.Restriction)
			}
			if arg.Restriction != nil {
				score.RestrictedSlots += len(atBindings)
			}
			ordered = append(ordered, atBindings...)
			continue
		}

		b, ok := bindings[i]
		if !ok {
			continue
		}

		if !b.IsDefault && !checkRestriction(b, reg) {
			return nil, restrictionMismatch(def, b, reg)
		}

		if arg.Restriction != nil {
			score.RestrictedSlots++
		}
		restrictions = append(restrictions, arg.Restriction)

		ordered = append(ordered, b)
	}

	score.Restrictions = restrictions

	// Step 6: block compatibility.
	if def.BlockArg != nil && !hasBlock {
		return nil, &BlockMismatch{Name: def.Name, WantBlock: true}
	}
	if def.BlockArg == nil && hasBlock {
		return nil, &BlockMismatch{Name: def.Name, WantBlock: false}
	}

	return &Candidate{Def: def, Bindings: ordered, Score: score}, nil
}

// arityRange computes [min_size, max_size] per spec.md §4.E step 1's
// formula, assuming defaults are contiguous and trailing before the
// splat (or, for a splat-less def, trailing among all args).
func arityRange(def *ast.Def) (min, max int) {
	firstDefault := len(def.Args)
	for i, arg := range def.Args {
		if arg.HasDefault() {
			firstDefault = i
			break
		}
	}

	if !def.HasSplat() {
		return firstDefault, len(def.Args)
	}

	hasDefaultBeforeSplat := firstDefault <= def.SplatIndex
	min = firstDefault
	if !hasDefaultBeforeSplat {
		min--
	}
	return min, -1
}

func findFormal(def *ast.Def, name string) (int, *ast.Arg) {
	for i, arg := range def.Args {
		if arg.Name == name {
			return i, arg
		}
	}
	return -1, nil
}

func checkRestriction(b Binding, reg *types.Registry) bool {
	if b.Formal.Restriction == nil {
		return true
	}
	if b.Actual == nil {
		return true
	}

	actual := reg.Lookup(b.Actual.Type)
	return types.CompatibleWith(actual, b.Formal.Restriction)
}

func restrictionMismatch(def *ast.Def, b Binding, reg *types.Registry) error {
	actualRepr := "?"
	if b.Actual != nil {
		actualRepr = reg.Lookup(b.Actual.Type).Repr()
	}

	return &NoOverloadMatches{
		Name:       def.Name,
		ArgTypes:   []string{actualRepr},
		Candidates: []*ast.Def{def},
		Reasons: []string{
			"argument '" + b.Formal.Name + "' (" + actualRepr + ") does not satisfy restriction " +
				b.Formal.Restriction.Repr(),
		},
	}
}
