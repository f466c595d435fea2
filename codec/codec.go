// Package codec turns raw module bytes into structured module descriptions.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/movekit/typeaccessor/pkg/move"
)

// Decoder turns raw module bytes into a structured module description.
// Implementations must be pure: the same input always yields the same
// module or the same error.
type Decoder interface {
	Decode(data []byte) (*move.Module, error)
}

// JSON decodes the module ABI JSON served by node REST APIs:
//
//	{
//	  "address": "0x1",
//	  "name": "coin",
//	  "structs": [
//	    {
//	      "name": "Coin",
//	      "generic_type_params": [{"constraints": []}],
//	      "fields": [{"name": "value", "type": "u64"}]
//	    }
//	  ]
//	}
//
// Field type strings are parsed with move.ParseType.
type JSON struct{}

// abiModule mirrors the wire shape of a module ABI document.
type abiModule struct {
	Address string      `json:"address"`
	Name    string      `json:"name"`
	Structs []abiStruct `json:"structs"`
}

type abiStruct struct {
	Name              string            `json:"name"`
	GenericTypeParams []json.RawMessage `json:"generic_type_params"`
	Fields            []abiField        `json:"fields"`
}

type abiField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Decode implements Decoder.
func (JSON) Decode(data []byte) (*move.Module, error) {
	// Cheap shape probe before committing to a full unmarshal, so that
	// clearly foreign payloads (HTML error pages, wrapped responses) fail
	// with a pointed message.
	if _, err := jsonparser.GetString(data, "address"); err != nil {
		return nil, fmt.Errorf("module ABI missing address: %w", err)
	}
	if _, err := jsonparser.GetString(data, "name"); err != nil {
		return nil, fmt.Errorf("module ABI missing name: %w", err)
	}

	var raw abiModule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed module ABI: %w", err)
	}

	addr, err := move.ParseAddress(raw.Address)
	if err != nil {
		return nil, fmt.Errorf("malformed module ABI: %w", err)
	}

	mod := &move.Module{
		ID:      move.NewModuleID(addr, raw.Name),
		Structs: make([]move.Struct, 0, len(raw.Structs)),
	}

	for _, s := range raw.Structs {
		st := move.Struct{
			Name:              s.Name,
			GenericTypeParams: len(s.GenericTypeParams),
			Fields:            make([]move.Field, 0, len(s.Fields)),
		}
		for _, f := range s.Fields {
			typ, err := move.ParseType(f.Type)
			if err != nil {
				return nil, fmt.Errorf("module %s struct %s field %s: %w", mod.ID, s.Name, f.Name, err)
			}
			st.Fields = append(st.Fields, move.Field{Name: f.Name, Type: typ})
		}
		mod.Structs = append(mod.Structs, st)
	}

	return mod, nil
}

// Verify interface compliance.
var _ Decoder = JSON{}
