// Package types implements Onyx's type registry: the opaque handles and
// data-type algebra the semantic core consults when checking restrictions,
// expanding call-site splats, and comparing overload specificity.
package types

import "strings"

// DataType is the parent interface for all types in Onyx.
type DataType interface {
	// Repr returns a representative string of the type for purposes of
	// error reporting.
	Repr() string

	// equals and equiv are the internal, type-specific implementations of
	// Equals and Equiv.  They should NEVER be called directly except by
	// Equals and Equiv.  They do not handle special cases like comparisons
	// to aliases or wrapped types.
	equals(DataType) bool
	equiv(DataType) bool
}

// Equals performs strict, structural type equality.
func Equals(a, b DataType) bool {
	return a.equals(b)
}

// Equiv performs the looser "equivalence" comparison used for restriction
// checking: aliases and named types compare against their underlying
// definitions.
func Equiv(a, b DataType) bool {
	return RemoveAlias(a).equiv(RemoveAlias(b))
}

// -----------------------------------------------------------------------------

// PrimType represents a primitive type such as Int32 or Char.
type PrimType int

const (
	PrimInt32 PrimType = iota
	PrimInt64
	PrimFloat64
	PrimBool
	PrimChar
	PrimString
	PrimNil
)

func (pt PrimType) Repr() string {
	switch pt {
	case PrimInt32:
		return "Int32"
	case PrimInt64:
		return "Int64"
	case PrimFloat64:
		return "Float64"
	case PrimBool:
		return "Bool"
	case PrimChar:
		return "Char"
	case PrimString:
		return "String"
	default:
		return "Nil"
	}
}

func (pt PrimType) equals(other DataType) bool {
	opt, ok := other.(PrimType)
	return ok && pt == opt
}

func (pt PrimType) equiv(other DataType) bool {
	return pt.equals(other)
}

// -----------------------------------------------------------------------------

// FuncType represents the signature of a def, used both as the shape of a
// method and, transiently, as a candidate's substituted signature.
type FuncType struct {
	Args       []DataType
	ReturnType DataType
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, arg := range ft.Args {
		sb.WriteString(arg.Repr())
		if i < len(ft.Args)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.ReturnType.Repr())
	return sb.String()
}

func (ft *FuncType) equals(other DataType) bool {
	oft, ok := other.(*FuncType)
	if !ok || len(ft.Args) != len(oft.Args) {
		return false
	}

	for i, arg := range ft.Args {
		if !Equals(arg, oft.Args[i]) {
			return false
		}
	}

	return Equals(ft.ReturnType, oft.ReturnType)
}

func (ft *FuncType) equiv(other DataType) bool {
	oft, ok := other.(*FuncType)
	if !ok || len(ft.Args) != len(oft.Args) {
		return false
	}

	for i, arg := range ft.Args {
		if !Equiv(arg, oft.Args[i]) {
			return false
		}
	}

	return Equiv(ft.ReturnType, oft.ReturnType)
}

// -----------------------------------------------------------------------------

// TupleType represents a tuple type of known length; element types may
// differ.  A call-site Splat whose operand's type is a TupleType of N
// elements is treated as N positional arguments in place.
type TupleType []DataType

func (tt TupleType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('{')

	for i, elem := range tt {
		sb.WriteString(elem.Repr())
		if i < len(tt)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteRune('}')
	return sb.String()
}

func (tt TupleType) equals(other DataType) bool {
	ott, ok := other.(TupleType)
	if !ok || len(tt) != len(ott) {
		return false
	}

	for i, elem := range tt {
		if !Equals(elem, ott[i]) {
			return false
		}
	}

	return true
}

func (tt TupleType) equiv(other DataType) bool {
	ott, ok := other.(TupleType)
	if !ok || len(tt) != len(ott) {
		return false
	}

	for i, elem := range tt {
		if !Equiv(elem, ott[i]) {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// UnionType represents a union of member types, eg. `String | Nil`.
type UnionType []DataType

func (ut UnionType) Repr() string {
	sb := strings.Builder{}

	for i, member := range ut {
		sb.WriteString(member.Repr())
		if i < len(ut)-1 {
			sb.WriteString(" | ")
		}
	}

	return sb.String()
}

func (ut UnionType) equals(other DataType) bool {
	out, ok := other.(UnionType)
	if !ok || len(ut) != len(out) {
		return false
	}

	for i, member := range ut {
		if !Equals(member, out[i]) {
			return false
		}
	}

	return true
}

func (ut UnionType) equiv(other DataType) bool {
	// A union is equivalent to another type only if every member has an
	// equivalent counterpart; used by restriction checking on splat
	// elements one member at a time, not on the union as a whole.
	out, ok := other.(UnionType)
	if !ok || len(ut) != len(out) {
		return false
	}

	for i, member := range ut {
		if !Equiv(member, out[i]) {
			return false
		}
	}

	return true
}

// tupleShapeCount returns how many distinct tuple arities/shapes are
// present among the union's members. Used to detect SplatUnion.
func (ut UnionType) tupleShapeCount() int {
	seen := map[string]struct{}{}

	for _, member := range ut {
		if tt, ok := RemoveAlias(member).(TupleType); ok {
			seen[tt.Repr()] = struct{}{}
		}
	}

	return len(seen)
}

// -----------------------------------------------------------------------------

// NilableType represents `T?`, a type unioned implicitly with Nil.
type NilableType struct {
	Elem DataType
}

func (nt *NilableType) Repr() string {
	return nt.Elem.Repr() + "?"
}

func (nt *NilableType) equals(other DataType) bool {
	ont, ok := other.(*NilableType)
	return ok && Equals(nt.Elem, ont.Elem)
}

func (nt *NilableType) equiv(other DataType) bool {
	if ont, ok := other.(*NilableType); ok {
		return Equiv(nt.Elem, ont.Elem)
	}

	// T? is equivalent to Nil itself for restriction-satisfies purposes.
	if _, ok := other.(PrimType); ok && other.(PrimType) == PrimNil {
		return true
	}

	return Equiv(nt.Elem, other)
}

// -----------------------------------------------------------------------------

// NamedType represents a user-defined class/struct type. Two named types are
// compared by name and owning package, per the teacher's NamedTypeBase
// convention: two different packages may declare the same name.
type NamedType struct {
	PkgName  string
	TypeName string
	ParentID uint64

	// Ancestors lists the named types this type inherits from, nearest
	// first, used by super-call forwarding to widen the receiver's
	// ancestor chain lookup.
	Ancestors []*NamedType
}

func (nt *NamedType) Repr() string {
	return nt.PkgName + "." + nt.TypeName
}

func (nt *NamedType) equals(other DataType) bool {
	ont, ok := other.(*NamedType)
	return ok && nt.TypeName == ont.TypeName && nt.ParentID == ont.ParentID
}

func (nt *NamedType) equiv(other DataType) bool {
	return nt.equals(other)
}

// IsSubtypeOf reports whether nt is anc itself or a descendant of anc in its
// ancestor chain -- used by the ranker's "stricter restriction outranks a
// looser one" ordering.
func (nt *NamedType) IsSubtypeOf(anc *NamedType) bool {
	if nt.equals(anc) {
		return true
	}

	for _, a := range nt.Ancestors {
		if a.IsSubtypeOf(anc) {
			return true
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// AliasType is a defined type alias; RemoveAlias unwraps it.
type AliasType struct {
	PkgName, TypeName string
	Target            DataType
}

func (at *AliasType) Repr() string {
	return at.PkgName + "." + at.TypeName
}

func (at *AliasType) equals(other DataType) bool {
	return Equals(at.Target, other)
}

func (at *AliasType) equiv(other DataType) bool {
	return Equiv(at.Target, other)
}
