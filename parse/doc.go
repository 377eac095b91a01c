// Package parse parses YAML or JSON configuration text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseFilename("stm32f0.yaml"))
//	if err != nil {
//	    return err
//	}
//
// Mappings keep the order in which their keys were written.
//
// # Related Packages
//
//   - github.com/signadot/svdpatch/ir - IR representation
//   - github.com/signadot/svdpatch/encode - Encode IR to text
package parse
