package sumi

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// ParamType is the in-memory representation of a single ABI value type.
// The grammar is closed: every value is one of the enumerated kinds above.
type ParamType struct {
	T    byte
	Size int         // bit width for int/uint, byte count for bytesN, length for fixed arrays
	Elem *ParamType  // element type for slices and fixed arrays
	Tup  []ParamType // member types for tuples
}

// elementaryRegex matches the non-composite type spellings, e.g. "uint256".
var elementaryRegex = regexp.MustCompile(`^([a-z]+)([0-9]*)$`)

// ParseType parses the raw textual type given by the interface description
// into a ParamType. Malformed grammars fail with ErrMalformedType.
func ParseType(raw string) (ParamType, error) {
	if strings.Count(raw, "[") != strings.Count(raw, "]") {
		return ParamType{}, errors.Wrapf(ErrMalformedType, "unbalanced array brackets in %q", raw)
	}

	// Array suffixes bind outermost-last: uint8[2][] is a slice of [u8; 2].
	if strings.HasSuffix(raw, "]") {
		i := strings.LastIndex(raw, "[")
		if i < 1 {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "array with no element type in %q", raw)
		}
		elem, err := ParseType(raw[:i])
		if err != nil {
			return ParamType{}, err
		}
		size := raw[i+1 : len(raw)-1]
		if size == "" {
			return ParamType{T: SliceTy, Elem: &elem}, nil
		}
		n, err := strconv.Atoi(size)
		if err != nil || n < 0 {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "invalid array length in %q", raw)
		}
		return ParamType{T: ArrayTy, Size: n, Elem: &elem}, nil
	}

	if strings.HasPrefix(raw, "(") {
		if !strings.HasSuffix(raw, ")") {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "unterminated tuple in %q", raw)
		}
		members, err := splitTopLevel(raw[1 : len(raw)-1])
		if err != nil {
			return ParamType{}, errors.Wrapf(err, "in %q", raw)
		}
		out := ParamType{T: TupleTy, Tup: make([]ParamType, 0, len(members))}
		for _, member := range members {
			elem, err := ParseType(member)
			if err != nil {
				return ParamType{}, err
			}
			out.Tup = append(out.Tup, elem)
		}
		return out, nil
	}

	matches := elementaryRegex.FindStringSubmatch(raw)
	if matches == nil {
		return ParamType{}, errors.Wrapf(ErrMalformedType, "invalid type %q", raw)
	}
	name, digits := matches[1], matches[2]

	size := 0
	if digits != "" {
		var err error
		if size, err = strconv.Atoi(digits); err != nil {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "invalid size in %q", raw)
		}
	}

	switch name {
	case "int", "uint":
		// Bare int/uint default to 256 bits; explicit widths must be
		// whole bytes no wider than a word.
		if digits == "" {
			size = 256
		}
		if size == 0 || size > 256 || size%8 != 0 {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "unsupported integer width in %q", raw)
		}
		if name == "int" {
			return ParamType{T: IntTy, Size: size}, nil
		}
		return ParamType{T: UintTy, Size: size}, nil
	case "bytes":
		if digits == "" {
			return ParamType{T: BytesTy}, nil
		}
		if size < 1 || size > 32 {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "unsupported fixed bytes size in %q", raw)
		}
		return ParamType{T: FixedBytesTy, Size: size}, nil
	case "bool", "address", "string":
		if digits != "" {
			return ParamType{}, errors.Wrapf(ErrMalformedType, "unexpected size suffix in %q", raw)
		}
		switch name {
		case "bool":
			return ParamType{T: BoolTy}, nil
		case "address":
			return ParamType{T: AddressTy}, nil
		default:
			return ParamType{T: StringTy}, nil
		}
	}
	return ParamType{}, errors.Wrapf(ErrMalformedType, "invalid type %q", raw)
}

// splitTopLevel splits tuple members on commas that sit outside any nested
// tuple or array brackets.
func splitTopLevel(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var members []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, errors.Wrap(ErrMalformedType, "unbalanced tuple nesting")
			}
		case ',':
			if depth == 0 {
				members = append(members, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.Wrap(ErrMalformedType, "unbalanced tuple nesting")
	}
	members = append(members, s[start:])
	for _, member := range members {
		if member == "" {
			return nil, errors.Wrap(ErrMalformedType, "empty tuple member")
		}
	}
	return members, nil
}
