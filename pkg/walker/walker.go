// Package walker extracts per-struct field-type maps from a structured
// module and discovers the foreign modules referenced by those field types.
package walker

import (
	"fmt"
	"sort"

	"github.com/movekit/typeaccessor/pkg/move"
)

// FieldTypes maps field name to declared type for one struct.
type FieldTypes map[string]move.Expr

// Result is the walker's output for one module: the field map of every
// struct the module declares, plus the set of foreign modules reachable from
// those field types, sorted ascending and deduplicated.
type Result struct {
	Structs    map[string]FieldTypes
	Discovered []move.ModuleID
}

// Walk traverses every struct in the module and returns its field maps
// together with the module identifiers referenced by the field types.
//
// Traversal is bounded: each type expression node is visited at most once per
// struct, guarded by a seen-set keyed on structural equality, so
// self-referential and mutually generic shapes terminate. A struct reference
// records its target module but is not descended into; the target's own
// fields are only explored when that module is itself walked.
func Walk(mod *move.Module) (*Result, error) {
	structs := make(map[string]FieldTypes, len(mod.Structs))
	discovered := make(map[move.ModuleID]bool)

	for _, s := range mod.Structs {
		fields := make(FieldTypes, len(s.Fields))
		var worklist []move.Expr
		seen := make(map[string]bool)

		for _, f := range s.Fields {
			fields[f.Name] = f.Type
			worklist = append(worklist, f.Type)
		}
		structs[s.Name] = fields

		for len(worklist) > 0 {
			typ := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]

			key := typ.String()
			if seen[key] {
				continue
			}
			seen[key] = true

			switch t := typ.(type) {
			case move.Vector:
				worklist = append(worklist, t.Elem)
			case move.Reference:
				worklist = append(worklist, t.To)
			case move.StructTag:
				discovered[t.ModuleID()] = true
			case move.Primitive, move.TypeParam:
				// Leaves. A type parameter never triggers a lookup.
			default:
				return nil, fmt.Errorf("module %s struct %s: unhandled type expression %T", mod.ID, s.Name, typ)
			}
		}
	}

	ids := make([]move.ModuleID, 0, len(discovered))
	for id := range discovered {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	return &Result{Structs: structs, Discovered: ids}, nil
}
