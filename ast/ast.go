// Package ast defines the closed sum of AST node kinds the semantic core
// consumes: Def, Arg, Call, Splat, NamedArg, TupleLiteral, Out, and leaf
// expressions.  Nodes are tagged variants (interface + concrete struct)
// dispatched with type switches, not a virtual hierarchy -- the full Onyx
// front end has on the order of eighty such variants; this package carries
// only the ones the matcher and resolver read (spec.md §4.A).
package ast

import (
	"onyx/report"
	"onyx/types"
)

// Node is the root of every AST variant. Every node carries a source
// position for diagnostics.
type Node interface {
	Pos() report.Position
}

// Expr is any AST node that can appear in argument or expression position.
type Expr interface {
	Node
	exprNode()
}

// base embeds the source position shared by every node.
type base struct {
	Position report.Position
}

func (b base) Pos() report.Position { return b.Position }

// -----------------------------------------------------------------------------

// Ident is a bare identifier reference, eg. a formal argument reference
// re-synthesized during super-call forwarding or splat expansion.
type Ident struct {
	base
	Name string

	// Type is filled in once the identifier's type has been inferred.
	// Until then it holds the zero TypeID, which is also the handle of the
	// first type a Registry interns.
	Type types.TypeID
}

func (*Ident) exprNode() {}

// Literal is a leaf literal expression (int, float, string, char, bool,
// nil literal).
type Literal struct {
	base
	Kind  LiteralKind
	Value string
	Type  types.TypeID
}

func (*Literal) exprNode() {}

// LiteralKind enumerates leaf literal kinds.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
	LitNil
)

// TupleLiteral is an ordered, fixed-length aggregate literal, eg. `{1, 2}`.
// Its static type is a types.TupleType of its elements' types.
type TupleLiteral struct {
	base
	Elements []Expr
}

func (*TupleLiteral) exprNode() {}

// Splat is a unary wrapper marking an argument for call-site expansion: its
// operand must have a tuple type at resolution time (spec.md §3).
type Splat struct {
	base
	Operand Expr
}

func (*Splat) exprNode() {}

// NamedArg pairs a formal parameter name with an actual expression at a
// call site: `foo(x: 1)`.
type NamedArg struct {
	base
	Name  string
	Value Expr
}

// Out represents a lib-call output parameter.  Out params are always
// positional and mandatory: they never participate in splat absorption or
// defaulting (spec.md's AST model names Out as lib-call-only).
type Out struct {
	base
	Name string
	Type types.DataType
}

func (*Out) exprNode() {}

// FieldAccess models `recv.name`, used as a Call's Receiver.
type FieldAccess struct {
	base
	Receiver Expr
	Name     string
}

func (*FieldAccess) exprNode() {}

// TupleIndex references element Index of Operand's tuple value. It is
// synthesized by call resolution when a call-site Splat's absorbed
// elements are canonicalized into an ordinary positional argument list,
// so that codegen reads element k of the operand tuple instead of the
// whole tuple (spec.md §4.C step 1).
type TupleIndex struct {
	base
	Operand Expr
	Index   int
}

func (*TupleIndex) exprNode() {}
