package move

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseType parses the canonical textual form of a type expression, as
// rendered by node APIs and by Expr.String:
//
//	u64
//	vector<u8>
//	&mut 0x1::string::String
//	0x1::table::Table<address, 0x1::coin::Coin<T0>>
//	T1
//
// Parsing is total over the closed variant set; anything else is an error.
func ParseType(s string) (Expr, error) {
	p := &typeParser{input: s}
	expr, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("invalid type %q: trailing input at offset %d", s, p.pos)
	}
	return expr, nil
}

// MustType is like ParseType but panics on error. Intended for tests.
func MustType(s string) Expr {
	expr, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return expr
}

// typeParser is a minimal recursive-descent parser over the type grammar.
type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parseType() (Expr, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("invalid type %q: unexpected end of input", p.input)
	}

	if p.input[p.pos] == '&' {
		p.pos++
		mutable := p.consumeKeyword("mut")
		to, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return Reference{Mutable: mutable, To: to}, nil
	}

	token := p.scanToken()
	if token == "" {
		return nil, fmt.Errorf("invalid type %q: unexpected character %q at offset %d", p.input, p.input[p.pos], p.pos)
	}

	switch {
	case token == "vector":
		elem, err := p.parseGenericArgs()
		if err != nil {
			return nil, err
		}
		if len(elem) != 1 {
			return nil, fmt.Errorf("invalid type %q: vector takes exactly one type argument", p.input)
		}
		return Vector{Elem: elem[0]}, nil

	case IsPrimitiveName(token):
		return Primitive{Name: token}, nil

	case isTypeParamToken(token):
		idx, _ := strconv.Atoi(token[1:])
		return TypeParam{Index: idx}, nil
	}

	// Anything left must be a fully qualified struct tag.
	return p.parseStructTag(token)
}

// parseStructTag parses "ADDR::module::Name[<args>]"; addrToken is the
// already-scanned address token.
func (p *typeParser) parseStructTag(addrToken string) (Expr, error) {
	addr, err := ParseAddress(addrToken)
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", p.input, err)
	}

	module, err := p.expectPathSegment()
	if err != nil {
		return nil, err
	}
	name, err := p.expectPathSegment()
	if err != nil {
		return nil, err
	}

	tag := StructTag{Address: addr, Module: module, Name: name}
	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == '<' {
		args, err := p.parseGenericArgs()
		if err != nil {
			return nil, err
		}
		tag.TypeArgs = args
	}
	return tag, nil
}

// parseGenericArgs parses "<T, U, ...>" with at least one argument.
func (p *typeParser) parseGenericArgs() ([]Expr, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		return nil, fmt.Errorf("invalid type %q: expected '<' at offset %d", p.input, p.pos)
	}
	p.pos++

	var args []Expr
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpaces()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("invalid type %q: unterminated type argument list", p.input)
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("invalid type %q: expected ',' or '>' at offset %d", p.input, p.pos)
		}
	}
}

// expectPathSegment consumes "::" followed by an identifier.
func (p *typeParser) expectPathSegment() (string, error) {
	p.skipSpaces()
	if !strings.HasPrefix(p.input[p.pos:], "::") {
		return "", fmt.Errorf("invalid type %q: expected '::' at offset %d", p.input, p.pos)
	}
	p.pos += 2
	seg := p.scanToken()
	if !isIdentifier(seg) {
		return "", fmt.Errorf("invalid type %q: bad identifier %q at offset %d", p.input, seg, p.pos)
	}
	return seg, nil
}

// scanToken consumes a run of identifier characters (covers identifiers,
// primitives, type parameters, and hex addresses).
func (p *typeParser) scanToken() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		// The 0x prefix shares the identifier character class, so 'x' is
		// already covered above.
		break
	}
	return p.input[start:p.pos]
}

// consumeKeyword consumes the keyword plus one trailing space if present.
func (p *typeParser) consumeKeyword(kw string) bool {
	p.skipSpaces()
	if strings.HasPrefix(p.input[p.pos:], kw+" ") {
		p.pos += len(kw) + 1
		return true
	}
	return false
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// isTypeParamToken reports whether token has the "T<digits>" shape.
func isTypeParamToken(token string) bool {
	if len(token) < 2 || token[0] != 'T' {
		return false
	}
	for _, c := range token[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
