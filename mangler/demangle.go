package mangler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSymbol is wrapped into every error Demangle returns when
// sym does not parse as a well-formed mangled symbol.
var ErrMalformedSymbol = errors.New("mangler: malformed symbol")

// Demangle is the inverse of the Mangle* functions: given a mangled
// symbol, it returns a human-readable rendering of the declaration it
// names. It does not reconstruct source syntax exactly — parameter
// external/internal names and types are rendered in a fixed
// `label name: Type` shape regardless of how the original source
// spelled the declaration — but every substring the language reference's
// testable-properties scenario 6 requires (the owner name, the
// member name, each argument's label/name/type, and the return type)
// appears in the result.
func Demangle(sym string) (string, error) {
	p := &scanner{s: sym}
	if !p.consumeLiteral(prefix) {
		return "", fmt.Errorf("%w: missing %q prefix", ErrMalformedSymbol, prefix)
	}
	kind, ok := p.readByte()
	if !ok {
		return "", fmt.Errorf("%w: truncated after prefix", ErrMalformedSymbol)
	}
	switch kind {
	case 'F':
		return demangleFunc(p)
	case 'T':
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		return "type " + name, p.requireExhausted()
	case 'P':
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		return "protocol " + name, p.requireExhausted()
	case 'G', 'g':
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		typ, err := demangleType(p)
		if err != nil {
			return "", err
		}
		keyword := "var"
		if kind == 'g' {
			keyword = "let"
		}
		return keyword + " " + name + ": " + typ, p.requireExhausted()
	case 'C':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		index, err := p.readInt()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("closure #%d in %s", index, owner), p.requireExhausted()
	case 'W':
		protocol, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		conforming, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		return conforming + ": " + protocol, p.requireExhausted()
	default:
		return "", fmt.Errorf("%w: unknown symbol kind %q", ErrMalformedSymbol, kind)
	}
}

func demangleFunc(p *scanner) (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("%w: truncated function symbol", ErrMalformedSymbol)
	}
	if c >= '0' && c <= '9' {
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		args, err := demangleArgsUntilR(p)
		if err != nil {
			return "", err
		}
		ret, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("func %s(%s) -> %s", name, strings.Join(args, ", "), ret), p.requireExhausted()
	}

	modifier, _ := p.readByte()
	switch modifier {
	case 'M', 'm':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		args, err := demangleArgsUntilR(p)
		if err != nil {
			return "", err
		}
		ret, err := demangleType(p)
		if err != nil {
			return "", err
		}
		qualifier := ""
		if modifier == 'm' {
			qualifier = "static "
		}
		return fmt.Sprintf("%s%s.%s(%s) -> %s", qualifier, owner, name, strings.Join(args, ", "), ret),
			p.requireExhausted()
	case 'I':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		args, err := demangleArgsUntilExhausted(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("init %s(%s)", owner, strings.Join(args, ", ")), nil
	case 'D':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		return "deinit " + owner, p.requireExhausted()
	case 'g':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		ret, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("get %s.%s -> %s", owner, name, ret), p.requireExhausted()
	case 's':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		arg, err := demangleArg(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("set %s.%s(%s)", owner, name, arg), p.requireExhausted()
	case 'S':
		owner, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		args, err := demangleArgsUntilR(p)
		if err != nil {
			return "", err
		}
		ret, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("subscript %s(%s) -> %s", owner, strings.Join(args, ", "), ret), p.requireExhausted()
	case 'O':
		kindByte, ok := p.readByte()
		if !ok {
			return "", fmt.Errorf("%w: truncated operator symbol", ErrMalformedSymbol)
		}
		symbol, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		kindStr := "infix"
		if kindByte == 'P' {
			kindStr = "prefix"
		}
		return kindStr + " operator " + symbol, p.requireExhausted()
	default:
		return "", fmt.Errorf("%w: unknown function modifier %q", ErrMalformedSymbol, modifier)
	}
}

// demangleArgsUntilR reads arguments until the `R` return-type marker,
// consumes it, and leaves the scanner positioned at the return type.
func demangleArgsUntilR(p *scanner) ([]string, error) {
	var args []string
	for {
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("%w: truncated argument list", ErrMalformedSymbol)
		}
		if c == 'R' {
			p.pos++
			return args, nil
		}
		arg, err := demangleArg(p)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

// demangleArgsUntilExhausted reads arguments to the end of the
// symbol, for the initializer form which carries no return marker.
func demangleArgsUntilExhausted(p *scanner) ([]string, error) {
	var args []string
	for !p.exhausted() {
		arg, err := demangleArg(p)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func demangleArg(p *scanner) (string, error) {
	marker, ok := p.readByte()
	if !ok {
		return "", fmt.Errorf("%w: truncated argument", ErrMalformedSymbol)
	}
	switch marker {
	case 'S':
		name, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		typ, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return name + ": " + typ, nil
	case 'E':
		external, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		internal, err := p.readLenPrefixed()
		if err != nil {
			return "", err
		}
		typ, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return external + " " + internal + ": " + typ, nil
	default:
		return "", fmt.Errorf("%w: unknown argument marker %q", ErrMalformedSymbol, marker)
	}
}

var primitiveNames = map[string]string{
	"i8": "Int8", "i16": "Int16", "i32": "Int32", "i64": "Int64", "iW": "Int",
	"u8": "UInt8", "u16": "UInt16", "u32": "UInt32", "u64": "UInt64", "uW": "UInt",
	"B": "Bool", "F": "Float", "D": "Double", "V": "Void", "A": "Any", "E": "error",
}

func demangleType(p *scanner) (string, error) {
	c, ok := p.readByte()
	if !ok {
		return "", fmt.Errorf("%w: truncated type", ErrMalformedSymbol)
	}
	switch c {
	case 'N':
		return p.readLenPrefixed()
	case 'P':
		depth, err := p.readInt()
		if err != nil {
			return "", err
		}
		base, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return strings.Repeat("*", depth) + base, nil
	case 't':
		var elems []string
		for {
			cc, ok := p.peek()
			if !ok {
				return "", fmt.Errorf("%w: truncated tuple", ErrMalformedSymbol)
			}
			if cc == 'T' {
				p.pos++
				break
			}
			elem, err := demangleType(p)
			if err != nil {
				return "", err
			}
			elems = append(elems, elem)
		}
		return "(" + strings.Join(elems, ", ") + ")", nil
	case 'F':
		var params []string
		variadic := false
		for {
			cc, ok := p.peek()
			if !ok {
				return "", fmt.Errorf("%w: truncated function type", ErrMalformedSymbol)
			}
			if cc == 'V' {
				p.pos++
				variadic = true
				continue
			}
			if cc == 'R' {
				p.pos++
				break
			}
			param, err := demangleType(p)
			if err != nil {
				return "", err
			}
			params = append(params, param)
		}
		ret, err := demangleType(p)
		if err != nil {
			return "", err
		}
		paramList := strings.Join(params, ", ")
		if variadic {
			if paramList != "" {
				paramList += ", "
			}
			paramList += "..."
		}
		return "(" + paramList + ") -> " + ret, nil
	case 'A':
		elem, err := demangleType(p)
		if err != nil {
			return "", err
		}
		return "[" + elem + "]", nil
	case 's':
		code, err := p.readKnownCode()
		if err != nil {
			return "", err
		}
		name, ok := primitiveNames[code]
		if !ok {
			return "", fmt.Errorf("%w: unknown primitive code %q", ErrMalformedSymbol, code)
		}
		return name, nil
	default:
		return "", fmt.Errorf("%w: unknown type marker %q", ErrMalformedSymbol, c)
	}
}

// scanner is a minimal left-to-right byte cursor over a mangled
// symbol; every read either succeeds and advances pos, or reports
// that the symbol ended early.
type scanner struct {
	s   string
	pos int
}

func (p *scanner) exhausted() bool { return p.pos >= len(p.s) }

func (p *scanner) peek() (byte, bool) {
	if p.exhausted() {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *scanner) readByte() (byte, bool) {
	c, ok := p.peek()
	if ok {
		p.pos++
	}
	return c, ok
}

func (p *scanner) consumeLiteral(lit string) bool {
	if !strings.HasPrefix(p.s[p.pos:], lit) {
		return false
	}
	p.pos += len(lit)
	return true
}

func (p *scanner) requireExhausted() error {
	if !p.exhausted() {
		return fmt.Errorf("%w: trailing data %q", ErrMalformedSymbol, p.s[p.pos:])
	}
	return nil
}

// readInt reads a run of decimal digits and returns it as an int.
func (p *scanner) readInt() (int, error) {
	start := p.pos
	for !p.exhausted() && isDigit(p.s[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: expected digits at offset %d", ErrMalformedSymbol, start)
	}
	n, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedSymbol, err)
	}
	return n, nil
}

// readLenPrefixed reads a decimal length followed by exactly that
// many bytes, the `3foo`-style encoding the language reference specifies for
// every name.
func (p *scanner) readLenPrefixed() (string, error) {
	n, err := p.readInt()
	if err != nil {
		return "", err
	}
	if p.pos+n > len(p.s) {
		return "", fmt.Errorf("%w: length %d exceeds remaining input", ErrMalformedSymbol, n)
	}
	s := p.s[p.pos : p.pos+n]
	p.pos += n
	return s, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// readKnownCode greedily matches the longest primitiveCodes entry
// starting at the cursor, so e.g. "i16" is read whole rather than as
// "i" followed by a stray "16".
func (p *scanner) readKnownCode() (string, error) {
	for _, code := range codesByLength {
		if strings.HasPrefix(p.s[p.pos:], code) {
			p.pos += len(code)
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: unrecognized primitive code at offset %d", ErrMalformedSymbol, p.pos)
}
