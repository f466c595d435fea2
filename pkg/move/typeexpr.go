package move

import (
	"fmt"
	"strings"
)

// Expr is the declared type of a struct field: a tagged, closed set of
// variants. Only the types in this package implement it.
//
// Equality of expressions is structural: two expressions are equal iff their
// full nested shape is equal. String produces a canonical rendering, so
// string equality is structural equality; cycle guards key on it.
type Expr interface {
	fmt.Stringer

	// isExpr seals the interface to the variants declared in this package.
	isExpr()
}

// Primitive is a built-in leaf type: bool, u8, u16, u32, u64, u128, u256,
// address, or signer. It carries no further structure.
type Primitive struct {
	Name string
}

// TypeParam is a generic type parameter placeholder, referenced by its
// position in the enclosing struct's declaration. It is a leaf: resolving a
// type parameter never triggers a module lookup.
type TypeParam struct {
	Index int
}

// Vector wraps the element type of a homogeneous vector.
type Vector struct {
	Elem Expr
}

// Reference wraps the referred-to type of an (im)mutable reference.
// Mutability does not influence module discovery.
type Reference struct {
	Mutable bool
	To      Expr
}

// StructTag names a struct declared in some module, with optional type
// arguments. The target module is what the resolution engine discovers;
// the target's own fields are only explored when that module is walked.
type StructTag struct {
	Address  Address
	Module   string
	Name     string
	TypeArgs []Expr
}

func (Primitive) isExpr() {}
func (TypeParam) isExpr() {}
func (Vector) isExpr()    {}
func (Reference) isExpr() {}
func (StructTag) isExpr() {}

func (p Primitive) String() string {
	return p.Name
}

func (t TypeParam) String() string {
	return fmt.Sprintf("T%d", t.Index)
}

func (v Vector) String() string {
	return "vector<" + v.Elem.String() + ">"
}

func (r Reference) String() string {
	if r.Mutable {
		return "&mut " + r.To.String()
	}
	return "&" + r.To.String()
}

func (s StructTag) String() string {
	var b strings.Builder
	b.WriteString(s.Address.String())
	b.WriteString("::")
	b.WriteString(s.Module)
	b.WriteString("::")
	b.WriteString(s.Name)
	if len(s.TypeArgs) > 0 {
		b.WriteByte('<')
		for i, arg := range s.TypeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

// ModuleID returns the identifier of the module declaring the tagged struct.
func (s StructTag) ModuleID() ModuleID {
	return ModuleID{Address: s.Address, Name: s.Module}
}

// primitiveNames is the closed set of primitive leaf types.
var primitiveNames = map[string]bool{
	"bool":    true,
	"u8":      true,
	"u16":     true,
	"u32":     true,
	"u64":     true,
	"u128":    true,
	"u256":    true,
	"address": true,
	"signer":  true,
}

// IsPrimitiveName reports whether name denotes a primitive leaf type.
func IsPrimitiveName(name string) bool {
	return primitiveNames[name]
}

// ExprEqual reports structural equality of two type expressions.
func ExprEqual(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}
