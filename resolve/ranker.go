package resolve

import "onyx/ast"

// Rank implements component F: given the set of candidates that matched
// (component E accepted them), it selects the single most specific one,
// or fails with NoOverloadMatches / Ambiguous.
//
// Grounded on bootstrap/depm/operator.go's CheckOperatorCollisions, which
// already walks all pairs of overloads comparing signatures for equality;
// here that pairwise-equality walk is repurposed from "reject at
// declaration time" to "prefer the later identical redefinition at call
// time" (spec.md §4.F step 3's redefinition exception).
// Rank returns the winning candidate(s). Ordinarily this is a single
// candidate. It is more than one only in the "dispatch" case (spec.md §6):
// every top-scoring candidate shares an identical signature but belongs to
// a different owner type in the receiver's ancestor chain -- a virtual
// override resolved at runtime, not an ambiguity. A same-owner identical
// tie is the redefinition case instead: the later declaration wins alone.
func Rank(name string, matches []*Candidate, rejected []*ast.Def, reasons []string) ([]*Candidate, error) {
	if len(matches) == 0 {
		return nil, &NoOverloadMatches{
			Name:       name,
			ArgTypes:   nil,
			Candidates: rejected,
			Reasons:    reasons,
		}
	}

	if len(matches) == 1 {
		return matches, nil
	}

	best := matches[0]
	tiedWithBest := []*Candidate{best}

	for _, cand := range matches[1:] {
		switch Compare(cand.Score, best.Score) {
		case 1:
			best = cand
			tiedWithBest = []*Candidate{cand}
		case 0:
			tiedWithBest = append(tiedWithBest, cand)
		}
	}

	if len(tiedWithBest) == 1 {
		return []*Candidate{best}, nil
	}

	if !allIdenticalSignatures(tiedWithBest) {
		defs := make([]*ast.Def, len(tiedWithBest))
		for i, cand := range tiedWithBest {
			defs[i] = cand.Def
		}
		return nil, &Ambiguous{Name: name, Candidates: defs}
	}

	if sameOwner(tiedWithBest) {
		latest := tiedWithBest[0]
		for _, cand := range tiedWithBest[1:] {
			if cand.Def.DeclOrder() > latest.Def.DeclOrder() {
				latest = cand
			}
		}
		return []*Candidate{latest}, nil
	}

	// Identical signatures, distinct owners: a dispatch.
	return tiedWithBest, nil
}

func sameOwner(cands []*Candidate) bool {
	owner := cands[0].Def.Owner
	for _, cand := range cands[1:] {
		if cand.Def.Owner != owner {
			return false
		}
	}
	return true
}

func allIdenticalSignatures(cands []*Candidate) bool {
	if len(cands) < 2 {
		return true
	}

	repr := cands[0].Def.Repr()
	for _, cand := range cands[1:] {
		if cand.Def.Repr() != repr {
			return false
		}
	}

	return true
}
