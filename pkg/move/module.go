package move

import (
	"fmt"
	"strings"
)

// ModuleID identifies one on-chain module by account address and name.
//
// ModuleIDs are totally ordered, address first, then name. The ordering is
// load-bearing: the resolution engine drains its retrieval frontier in
// ascending ModuleID order so that fetch sequences are reproducible.
type ModuleID struct {
	Address Address
	Name    string
}

// NewModuleID builds a ModuleID from its parts.
func NewModuleID(addr Address, name string) ModuleID {
	return ModuleID{Address: addr, Name: name}
}

// ParseModuleID parses the textual "0xADDR::name" form.
func ParseModuleID(s string) (ModuleID, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 2 {
		return ModuleID{}, fmt.Errorf("invalid module id %q: want ADDRESS::NAME", s)
	}
	addr, err := ParseAddress(parts[0])
	if err != nil {
		return ModuleID{}, fmt.Errorf("invalid module id %q: %w", s, err)
	}
	if !isIdentifier(parts[1]) {
		return ModuleID{}, fmt.Errorf("invalid module id %q: bad module name %q", s, parts[1])
	}
	return ModuleID{Address: addr, Name: parts[1]}, nil
}

// MustModuleID is like ParseModuleID but panics on error.
func MustModuleID(s string) ModuleID {
	id, err := ParseModuleID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String renders the "0xADDR::name" form.
func (id ModuleID) String() string {
	return id.Address.String() + "::" + id.Name
}

// Compare orders module identifiers by address, then name.
func (id ModuleID) Compare(other ModuleID) int {
	if c := id.Address.Compare(other.Address); c != 0 {
		return c
	}
	return strings.Compare(id.Name, other.Name)
}

// Less reports whether id sorts before other.
func (id ModuleID) Less(other ModuleID) bool {
	return id.Compare(other) < 0
}

// Module is a structured module description: an identifier plus the structs
// the module declares, in declaration order.
type Module struct {
	ID      ModuleID
	Structs []Struct
}

// Struct is a named aggregate type declared inside a module.
type Struct struct {
	Name string
	// GenericTypeParams is the number of declared type parameters.
	GenericTypeParams int
	Fields            []Field
}

// Field is one named, typed struct field.
type Field struct {
	Name string
	Type Expr
}

// isIdentifier reports whether s is a valid module/struct/field identifier:
// a letter or underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
