package sumi

// In-memory representation of a single call parameter
type Input struct {
	Name     string
	EvmType  string // Raw type text as given by the interface description
	RustType string // Equivalent type to use in the generated ink! code, derived from EvmType
}

// In-memory representation of a single wrapped entry point
type Function struct {
	Name         string
	Inputs       []Input
	Output       string // Fixed to "bool"; only boolean-returning functions are wrapped
	Selector     string // Canonical signature text, e.g. "transfer(address,uint256)"
	SelectorHash string // First 4 digest bytes, lowercase hex without prefix
}

// In-memory representation of the generated wrapper module. The root value
// consumed by the renderer.
type Module struct {
	Name      string
	EvmID     string
	Functions []Function // Source order of the interface description
}
