// Package sumi generates ink! wrapper modules from EVM contract interface
// descriptions. The wrapper forwards typed calls to an EVM contract through
// the runtime's low-level xvm_call dispatch, keyed by 4-byte keccak selectors
// derived from each function's canonical signature.
package sumi

// Generate runs the whole pipeline once: parse the interface description,
// build the module model, expand the template. The result is complete output
// terminated by a single trailing newline; on error nothing is produced.
func Generate(jsonText []byte, moduleName, evmID string) (string, error) {
	module, err := BuildModule(jsonText, moduleName, evmID)
	if err != nil {
		return "", err
	}

	rendered, err := Render(module, Filters())
	if err != nil {
		return "", err
	}
	return rendered + "\n", nil
}
