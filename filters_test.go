package sumi

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeFilter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"transferFrom", "transfer_from"},
		{"transfer", "transfer"},
		{"setApprovalForAll", "set_approval_for_all"},
		{"ERC20Burn", "erc20_burn"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toSnakeCase(tt.in), "snake(%q)", tt.in)
	}
}

func TestUpperSnakeFilter(t *testing.T) {
	assert.Equal(t, "TRANSFER_FROM", toUpperSnakeCase("transferFrom"))
	assert.Equal(t, "TRANSFER", toUpperSnakeCase("transfer"))
}

func TestCapitalizeFilter(t *testing.T) {
	// Only the first character changes; this is not title-casing.
	assert.Equal(t, "Transfer", capitalize("transfer"))
	assert.Equal(t, "TransferFrom", capitalize("transferFrom"))
	assert.Equal(t, "Erc20", capitalize("erc20"))
	assert.Equal(t, "", capitalize(""))
}

func TestFilterRejectsNonString(t *testing.T) {
	filters := Filters()
	for _, name := range []string{"snake", "upper_snake", "capitalize"} {
		fn, ok := filters[name].(func(interface{}) (string, error))
		require.True(t, ok, "filter %s has unexpected shape", name)

		_, err := fn(42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFilterType), "filter %s: want ErrFilterType, got %v", name, err)
	}
}
