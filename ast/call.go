package ast

import (
	"onyx/types"
)

// CallState is the per-call resolution state machine (spec.md §4.G):
//
//	Unresolved -> Preprocessed -> Matched -> Bound -> Typed
//
// Transitions are monotonic; any step may instead terminate into Failed
// with a diagnostic. Mirrors the small-state-enum-on-node convention of
// bootstrap/walk/walk_block.go's ControlReturn/ControlNoExit.
type CallState int

const (
	CallUnresolved CallState = iota
	CallPreprocessed
	CallMatched
	CallBound
	CallTyped
	CallFailed
)

// Call is a call site.
type Call struct {
	base

	// Receiver is the optional receiver expression; nil for a top-level
	// call.
	Receiver Expr

	Name string

	// Args is the ordered positional argument list.  Elements may be
	// *Splat wrappers prior to preprocessing; after step 4.G.5 this slice
	// is replaced atomically with the canonicalized positional vector.
	Args []Expr

	// NamedArgs is the call's named-argument list, order of appearance
	// preserved but semantically a mapping (keys unique, enforced by the
	// preprocessor).
	NamedArgs []*NamedArg

	// Block is the optional block argument.
	Block Expr

	// IsSuperCall marks an implicit `super` call, which reconstructs its
	// argument list from the enclosing method rather than from source
	// text (spec.md §4.G "Super-call forwarding").
	IsSuperCall bool

	State CallState

	// TargetDefs is attached once resolution succeeds: non-empty; more
	// than one entry marks the call as a dispatch (spec.md §6).
	TargetDefs []*Def

	// ResolvedType is the call's inferred return type, bound in step
	// 4.G.6.
	ResolvedType types.TypeID

	// Diagnostic records the terminating error when State == CallFailed.
	Diagnostic error
}

func (*Call) exprNode() {}
