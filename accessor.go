package typeaccessor

import (
	"encoding/json"
	"sort"

	"github.com/movekit/typeaccessor/pkg/move"
)

// TypeAccessor is the finished, immutable field-type index: for every module
// in the resolved closure, the declared type of every struct field. It is
// produced by Builder.Build and only ever read afterwards.
type TypeAccessor struct {
	// fieldInfo: module -> struct name -> field name -> type expression.
	fieldInfo map[move.ModuleID]map[string]map[string]move.Expr
}

// newTypeAccessor takes ownership of fieldInfo; the builder hands over its
// only reference, which is what makes the accessor immutable in practice.
func newTypeAccessor(fieldInfo map[move.ModuleID]map[string]map[string]move.Expr) *TypeAccessor {
	return &TypeAccessor{fieldInfo: fieldInfo}
}

// Lookup returns the declared type of one struct field, or false if the
// module, struct, or field is not in the index.
func (a *TypeAccessor) Lookup(id move.ModuleID, structName, fieldName string) (move.Expr, bool) {
	structs, ok := a.fieldInfo[id]
	if !ok {
		return nil, false
	}
	fields, ok := structs[structName]
	if !ok {
		return nil, false
	}
	typ, ok := fields[fieldName]
	return typ, ok
}

// HasModule reports whether the index contains the given module.
func (a *TypeAccessor) HasModule(id move.ModuleID) bool {
	_, ok := a.fieldInfo[id]
	return ok
}

// Modules returns every indexed module identifier in ascending order.
func (a *TypeAccessor) Modules() []move.ModuleID {
	ids := make([]move.ModuleID, 0, len(a.fieldInfo))
	for id := range a.fieldInfo {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// Structs returns the struct names indexed for a module, sorted.
func (a *TypeAccessor) Structs(id move.ModuleID) []string {
	structs, ok := a.fieldInfo[id]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(structs))
	for name := range structs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields returns the field names indexed for one struct, sorted.
func (a *TypeAccessor) Fields(id move.ModuleID, structName string) []string {
	structs, ok := a.fieldInfo[id]
	if !ok {
		return nil
	}
	fields, ok := structs[structName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of indexed modules.
func (a *TypeAccessor) Len() int {
	return len(a.fieldInfo)
}

// Equal reports whether two indexes hold exactly the same modules, structs,
// fields, and types. Intended for tests asserting deterministic builds.
func (a *TypeAccessor) Equal(other *TypeAccessor) bool {
	if other == nil || len(a.fieldInfo) != len(other.fieldInfo) {
		return false
	}
	for id, structs := range a.fieldInfo {
		otherStructs, ok := other.fieldInfo[id]
		if !ok || len(structs) != len(otherStructs) {
			return false
		}
		for name, fields := range structs {
			otherFields, ok := otherStructs[name]
			if !ok || len(fields) != len(otherFields) {
				return false
			}
			for field, typ := range fields {
				otherTyp, ok := otherFields[field]
				if !ok || !move.ExprEqual(typ, otherTyp) {
					return false
				}
			}
		}
	}
	return true
}

// MarshalJSON renders the index as nested objects keyed by module, struct,
// and field, with types in their canonical textual form. encoding/json
// sorts object keys, so the rendering is deterministic.
func (a *TypeAccessor) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]map[string]string, len(a.fieldInfo))
	for id, structs := range a.fieldInfo {
		outStructs := make(map[string]map[string]string, len(structs))
		for name, fields := range structs {
			outFields := make(map[string]string, len(fields))
			for field, typ := range fields {
				outFields[field] = typ.String()
			}
			outStructs[name] = outFields
		}
		out[id.String()] = outStructs
	}
	return json.Marshal(out)
}
