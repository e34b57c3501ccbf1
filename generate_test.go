package sumi

import (
	"strings"
	"testing"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const erc20Description = `[
	{"type": "function", "name": "transfer", "stateMutability": "nonpayable",
	 "inputs": [{"name": "to", "type": "address"}, {"name": "amount", "type": "uint256"}],
	 "outputs": [{"type": "bool"}]},
	{"type": "function", "name": "balanceOf", "stateMutability": "view",
	 "inputs": [{"name": "owner", "type": "address"}],
	 "outputs": [{"type": "bool"}]},
	{"type": "function", "name": "transferFrom", "stateMutability": "nonpayable",
	 "inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"}, {"name": "amount", "type": "uint256"}],
	 "outputs": [{"type": "bool"}]}
]`

func TestGenerate(t *testing.T) {
	out, err := Generate([]byte(erc20Description), "erc20", "0x0F")
	require.NoError(t, err)

	// Module header and re-exports
	assert.Contains(t, out, "//! This file was autogenerated by Sumi\n")
	assert.Contains(t, out, "pub use self::erc20::{\n    Erc20,\n    Erc20Ref,\n")
	assert.Contains(t, out, "const EVM_ID: u8 = 0x0F;\n")
	assert.Contains(t, out, "mod erc20 {\n")
	assert.Contains(t, out, "pub struct Erc20 {\n        evm_address: H160,\n    }")

	// Selector constants carry the canonical signature and its digest prefix
	assert.Contains(t, out, "// Selector for `transfer(address,uint256)`\n"+
		`    const TRANSFER_SELECTOR: [u8; 4] = hex!["a9059cbb"];`)
	assert.Contains(t, out, "// Selector for `transferFrom(address,address,uint256)`\n"+
		`    const TRANSFER_FROM_SELECTOR: [u8; 4] = hex!["23b872dd"];`)

	// Forwarding message with mapped parameter types
	assert.Contains(t, out, "/// Send `transfer` call to contract\n"+
		"        #[ink(message)]\n"+
		"        pub fn transfer(&mut self, to: H160, amount: U256) -> bool {\n"+
		"            let encoded_input = Self::transfer_encode(to, amount);")
	assert.Contains(t, out, "pub fn transfer_from(&mut self, from: H160, to: H160, amount: U256) -> bool {")

	// Encode helper joins tokenized inputs after the selector bytes
	assert.Contains(t, out, "fn transfer_encode(to: H160, amount: U256) -> Vec<u8> {\n"+
		"            let mut encoded = TRANSFER_SELECTOR.to_vec();\n"+
		"            let input = [\n"+
		"                to.tokenize(),\n"+
		"                amount.tokenize()\n"+
		"            ];")

	// The view function was filtered out entirely
	assert.NotContains(t, out, "balance_of")
	assert.NotContains(t, out, "balanceOf")

	// Complete output, single trailing newline
	assert.True(t, strings.HasSuffix(out, "}\n"), "output must end the module with a newline")
	assert.False(t, strings.HasSuffix(out, "\n\n"), "output must end with a single trailing newline")
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate([]byte(erc20Description), "erc20", "0x0F")
	require.NoError(t, err)
	second, err := Generate([]byte(erc20Description), "erc20", "0x0F")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateEmptyModule(t *testing.T) {
	out, err := Generate([]byte(`[]`), "empty", "0x0F")
	require.NoError(t, err)

	// The fixed support block renders even with no qualifying functions.
	assert.Contains(t, out, "mod empty {\n")
	assert.Contains(t, out, "trait Tokenize {")
	assert.NotContains(t, out, "_SELECTOR")
}

func TestGenerateErrorsShortCircuit(t *testing.T) {
	_, err := Generate([]byte(`{"not": "a sequence"}`), "m", "0x0F")
	assert.True(t, errors.Is(err, ErrInvalidInterface))

	_, err = Generate([]byte(`[
		{"type": "function", "name": "f", "stateMutability": "nonpayable",
		 "inputs": [{"name": "x", "type": "uint256[2"}], "outputs": [{"type": "bool"}]}
	]`), "m", "0x0F")
	assert.True(t, errors.Is(err, ErrMalformedType))
}

func TestRenderMissingFilterIsRenderError(t *testing.T) {
	module, err := BuildModule([]byte(`[]`), "m", "0x0F")
	require.NoError(t, err)

	_, err = Render(module, template.FuncMap{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRender), "want ErrRender, got %v", err)
}
