// Package move defines the data model for on-chain modules: account
// addresses, module identifiers, struct declarations, and the type
// expressions of struct fields.
package move

import (
	"fmt"
	"strings"
)

// AddressLength is the length of an account address in bytes.
const AddressLength = 32

// hexDigits of a full-length address.
const addressHexLen = AddressLength * 2

// Address is a 32-byte account address.
//
// The address is held in canonical form: lowercase hex with leading zeros
// preserved, no 0x prefix. With that representation lexicographic comparison
// of the canonical strings equals numeric comparison of the addresses, which
// is what makes ModuleID ordering cheap.
type Address struct {
	// canonical lowercase hex, always addressHexLen characters
	hex string
}

// ParseAddress parses an address from its textual form.
// Both short ("0x1") and full-length forms are accepted, with or without
// the 0x prefix. The empty string is rejected.
func ParseAddress(s string) (Address, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(s), "0x")
	if trimmed == "" {
		return Address{}, fmt.Errorf("invalid address %q: empty", s)
	}
	if len(trimmed) > addressHexLen {
		return Address{}, fmt.Errorf("invalid address %q: longer than %d hex digits", s, addressHexLen)
	}
	for _, c := range trimmed {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return Address{}, fmt.Errorf("invalid address %q: non-hex digit %q", s, c)
		}
	}
	return Address{hex: strings.Repeat("0", addressHexLen-len(trimmed)) + trimmed}, nil
}

// MustAddress is like ParseAddress but panics on error.
// Intended for tests and fixed well-known addresses.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether the address is the zero value (never produced by
// ParseAddress, only by an uninitialized Address).
func (a Address) IsZero() bool {
	return a.hex == ""
}

// Hex returns the full-length canonical hex form without the 0x prefix.
func (a Address) Hex() string {
	return a.hex
}

// String renders the conventional short form: 0x prefix, leading zeros
// stripped. The zero-valued Address renders as "0x0".
func (a Address) String() string {
	trimmed := strings.TrimLeft(a.hex, "0")
	if trimmed == "" {
		return "0x0"
	}
	return "0x" + trimmed
}

// Compare orders addresses numerically. It returns -1, 0, or +1.
func (a Address) Compare(b Address) int {
	return strings.Compare(a.hex, b.hex)
}
