package resolve

import (
	"fmt"
	"strings"

	"onyx/ast"
)

// The error kinds consumed or produced by the matcher (spec.md §7). Each
// implements error with the exact, tested message shape from spec.md §6
// where one is specified.
//
// Grounded on bootstrap/report/errors.go's LocalCompileError pattern: a
// small typed error carrying just the fields needed to format itself,
// raised and bubbled rather than logged inline.

// ExpectedRange describes an accepted argument-count range for the
// "expected E" clause of WrongArity's message.
type ExpectedRange struct {
	Min int
	Max int // -1 means unbounded (a splat def with no upper limit).
}

func (r ExpectedRange) String() string {
	switch {
	case r.Max < 0:
		return fmt.Sprintf("%d..", r.Min)
	case r.Min == r.Max:
		return fmt.Sprintf("%d", r.Min)
	default:
		return fmt.Sprintf("%d..%d", r.Min, r.Max)
	}
}

// UndefinedMethod -- no candidate def bears the called name.
type UndefinedMethod struct {
	Name string
}

func (e *UndefinedMethod) Error() string {
	return fmt.Sprintf("undefined method '%s'", e.Name)
}

// WrongArity -- arity partition fails for a single def under
// consideration (before the overload set is even assembled).
type WrongArity struct {
	Name     string
	Given    int
	Expected ExpectedRange
}

func (e *WrongArity) Error() string {
	return fmt.Sprintf("wrong number of arguments for '%s' (given %d, expected %s)", e.Name, e.Given, e.Expected)
}

// NoOverloadMatches -- no candidate accepted the call. Rank returns it when
// every def in the lookup list was rejected, whatever the reason (arity,
// named arguments, restrictions, block); Match returns it for a single def
// whose restriction check fails.
type NoOverloadMatches struct {
	Name       string
	ArgTypes   []string
	Candidates []*ast.Def
	Reasons    []string
}

func (e *NoOverloadMatches) Error() string {
	return fmt.Sprintf("no overload matches '%s' with types %s", e.Name, strings.Join(e.ArgTypes, ", "))
}

// Detail renders the per-candidate rejection reasons the resolver
// preserves alongside the headline message (spec.md §9 "Error reporting").
func (e *NoOverloadMatches) Detail() string {
	sb := strings.Builder{}
	for i, cand := range e.Candidates {
		sb.WriteString(fmt.Sprintf("  candidate %s: %s\n", cand.Repr(), e.Reasons[i]))
	}
	return sb.String()
}

// Ambiguous -- the ranker found more than one top-scoring, non-identical
// candidate.
type Ambiguous struct {
	Name       string
	Candidates []*ast.Def
}

func (e *Ambiguous) Error() string {
	reprs := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		reprs[i] = c.Repr()
	}
	return fmt.Sprintf("ambiguous call to '%s': %s", e.Name, strings.Join(reprs, ", "))
}

// NotATuple -- a call-site Splat's operand does not have a tuple type.
type NotATuple struct {
	Slot     int
	TypeName string
}

func (e *NotATuple) Error() string {
	return fmt.Sprintf("argument to splat must be a tuple, not %s", e.TypeName)
}

// SplatUnion -- a call-site Splat's operand is a union of more than one
// tuple shape; the language has no disjunctive arity resolution.
type SplatUnion struct {
	TypeName string
}

func (e *SplatUnion) Error() string {
	return fmt.Sprintf("splatting a union (%s) is not yet supported", e.TypeName)
}

// NamedArgUnknown -- a named argument names a formal that doesn't exist.
type NamedArgUnknown struct {
	Name string
}

func (e *NamedArgUnknown) Error() string {
	return fmt.Sprintf("no argument named '%s'", e.Name)
}

// NamedArgDuplicate -- a call supplies the same named-argument key twice.
type NamedArgDuplicate struct {
	Name string
}

func (e *NamedArgDuplicate) Error() string {
	return fmt.Sprintf("duplicate named argument '%s'", e.Name)
}

// NamedArgCoversSplat -- a named argument names a formal that falls
// within a def's splat region, or one already filled positionally.
type NamedArgCoversSplat struct {
	Name string
}

func (e *NamedArgCoversSplat) Error() string {
	return fmt.Sprintf("'%s' is already covered by a positional or splat argument", e.Name)
}

// MissingArg -- one or more required formals were never bound.
type MissingArg struct {
	Names []string
}

func (e *MissingArg) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("missing argument: %s", e.Names[0])
	}
	return fmt.Sprintf("missing arguments: %s", strings.Join(e.Names, ", "))
}

// BlockMismatch -- the def and call disagree on block-argument presence.
type BlockMismatch struct {
	Name      string
	WantBlock bool
}

func (e *BlockMismatch) Error() string {
	if e.WantBlock {
		return fmt.Sprintf("'%s' expects a block", e.Name)
	}
	return fmt.Sprintf("'%s' does not take a block", e.Name)
}
