package codec

import (
	"strings"
	"testing"

	"github.com/movekit/typeaccessor/pkg/move"
)

const coinABI = `{
	"address": "0x1",
	"name": "coin",
	"structs": [
		{
			"name": "Coin",
			"generic_type_params": [{"constraints": []}],
			"fields": [
				{"name": "value", "type": "u64"},
				{"name": "payee", "type": "address"}
			]
		},
		{
			"name": "Registry",
			"generic_type_params": [],
			"fields": [
				{"name": "entries", "type": "vector<0x1::coin::Coin<T0>>"}
			]
		}
	]
}`

func TestJSONDecode(t *testing.T) {
	mod, err := JSON{}.Decode([]byte(coinABI))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if mod.ID != move.MustModuleID("0x1::coin") {
		t.Errorf("ID = %v, want 0x1::coin", mod.ID)
	}
	if len(mod.Structs) != 2 {
		t.Fatalf("struct count = %d, want 2", len(mod.Structs))
	}

	coin := mod.Structs[0]
	if coin.Name != "Coin" || coin.GenericTypeParams != 1 {
		t.Errorf("Coin = %+v, want name Coin with 1 type param", coin)
	}
	if len(coin.Fields) != 2 {
		t.Fatalf("Coin field count = %d, want 2", len(coin.Fields))
	}
	if !move.ExprEqual(coin.Fields[0].Type, move.MustType("u64")) {
		t.Errorf("value type = %v, want u64", coin.Fields[0].Type)
	}

	registry := mod.Structs[1]
	if registry.Fields[0].Type.String() != "vector<0x1::coin::Coin<T0>>" {
		t.Errorf("entries type = %v", registry.Fields[0].Type)
	}
}

func TestJSONDecodeDeterministic(t *testing.T) {
	first, err := JSON{}.Decode([]byte(coinABI))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	second, err := JSON{}.Decode([]byte(coinABI))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(first.Structs) != len(second.Structs) {
		t.Fatalf("repeated decode disagrees on struct count")
	}
	for i := range first.Structs {
		if first.Structs[i].Name != second.Structs[i].Name {
			t.Errorf("repeated decode disagrees on struct %d", i)
		}
	}
}

func TestJSONDecodeRejectsForeignPayload(t *testing.T) {
	cases := map[string]string{
		"html":          "<html>502 Bad Gateway</html>",
		"empty object":  "{}",
		"missing name":  `{"address": "0x1"}`,
		"wrapped":       `{"data": {"address": "0x1", "name": "coin"}}`,
		"truncated":     `{"address": "0x1", "name": "coin", "structs": [`,
		"bad address":   `{"address": "zz", "name": "coin", "structs": []}`,
		"bad type":      `{"address": "0x1", "name": "coin", "structs": [{"name": "S", "fields": [{"name": "f", "type": "vector<"}]}]}`,
	}
	for label, payload := range cases {
		if _, err := (JSON{}).Decode([]byte(payload)); err == nil {
			t.Errorf("%s: Decode should fail", label)
		}
	}
}

func TestJSONDecodeErrorNamesField(t *testing.T) {
	payload := `{"address": "0x1", "name": "coin", "structs": [{"name": "S", "fields": [{"name": "broken", "type": "nope::"}]}]}`
	_, err := JSON{}.Decode([]byte(payload))
	if err == nil {
		t.Fatalf("Decode should fail")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the offending field: %v", err)
	}
}
