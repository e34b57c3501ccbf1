package sumi

import (
	"fmt"
	"strings"
)

// ConvertType translates a ParamType into the equivalent ink!/Rust type
// spelling. Total over the grammar and applied recursively to nested types.
func ConvertType(ty ParamType) string {
	switch ty.T {
	case BoolTy:
		return "bool"
	case AddressTy:
		return "H160"
	case SliceTy:
		return fmt.Sprintf("Vec<%s>", ConvertType(*ty.Elem))
	case ArrayTy:
		return fmt.Sprintf("[%s; %d]", ConvertType(*ty.Elem), ty.Size)
	case TupleTy:
		members := make([]string, len(ty.Tup))
		for i, member := range ty.Tup {
			members[i] = ConvertType(member)
		}
		return "(" + strings.Join(members, ", ") + ")"
	case FixedBytesTy:
		return fmt.Sprintf("FixedBytes<%d>", ty.Size)
	case BytesTy:
		return "Vec<u8>"
	case StringTy:
		return "String"
	case IntTy:
		switch ty.Size {
		case 8, 16, 32, 64, 128:
			return fmt.Sprintf("i%d", ty.Size)
		}
		return "I256"
	case UintTy:
		switch ty.Size {
		case 8, 16, 32, 64, 128:
			return fmt.Sprintf("u%d", ty.Size)
		}
		return "U256"
	}
	return ""
}
