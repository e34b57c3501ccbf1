package sumi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// EncodeSelector derives the canonical signature text and the 4-byte dispatch
// selector for a function. The signature is built from the raw type strings
// exactly as given, in declaration order; the selector is the first 4 bytes
// of the Keccak-256 digest of the UTF-8 signature bytes.
func EncodeSelector(name string, evmTypes []string) (string, [4]byte) {
	signature := fmt.Sprintf("%s(%s)", name, strings.Join(evmTypes, ","))

	var selector [4]byte
	copy(selector[:], crypto.Keccak256([]byte(signature)))
	return signature, selector
}
