package sumi

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

type abiParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type abiEntry struct {
	Type            string     `json:"type"`
	Name            string     `json:"name"`
	StateMutability string     `json:"stateMutability"`
	Inputs          []abiParam `json:"inputs"`
	Outputs         []abiParam `json:"outputs"`
}

// wrapped reports whether an ABI entry qualifies for the generated module.
// Only state-mutating functions whose every declared output is a bool fit the
// fixed wrapper shape; everything else is skipped, not rejected.
func wrapped(entry abiEntry) bool {
	if entry.Type != "function" {
		return false
	}
	if entry.StateMutability == "view" {
		return false
	}
	for _, output := range entry.Outputs {
		if output.Type != "bool" {
			return false
		}
	}
	return true
}

func parseFunction(index int, entry abiEntry) (*Function, error) {
	out := new(Function)
	out.Name = entry.Name

	// Resolve every input through the type grammar
	{
		out.Inputs = make([]Input, 0, len(entry.Inputs))
		for _, input := range entry.Inputs {
			parsed, err := ParseType(input.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "entry %d (%s), input %q", index, entry.Name, input.Name)
			}
			out.Inputs = append(out.Inputs, Input{
				Name:     input.Name,
				EvmType:  input.Type,
				RustType: ConvertType(parsed),
			})
		}
	}

	// Derive the dispatch selector over the raw types, in declaration order
	{
		evmTypes := make([]string, len(out.Inputs))
		for i, input := range out.Inputs {
			evmTypes[i] = input.EvmType
		}
		signature, selector := EncodeSelector(entry.Name, evmTypes)
		out.Selector = signature
		out.SelectorHash = common.Bytes2Hex(selector[:])
	}

	out.Output = "bool"
	return out, nil
}

// BuildModule parses the interface description into the Module consumed by
// the renderer. Function order equals first-match order in the description.
func BuildModule(jsonText []byte, moduleName, evmID string) (*Module, error) {
	var entries []abiEntry
	if err := json.Unmarshal(jsonText, &entries); err != nil {
		return nil, errors.Wrapf(ErrInvalidInterface, "expected a sequence of ABI entries: %v", err)
	}

	out := &Module{
		Name:      moduleName,
		EvmID:     evmID,
		Functions: make([]Function, 0, len(entries)),
	}
	for i, entry := range entries {
		if !wrapped(entry) {
			continue
		}
		parsed, err := parseFunction(i, entry)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, *parsed)
	}
	return out, nil
}
