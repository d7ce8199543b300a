// Package scope defines the resolver contract: given selection criteria, a
// resolver returns the deduplicated set of type descriptors the diagram is
// built from. Concrete providers live in the subpackages javasrc (tree-sitter
// over Java sources) and gopkg (go/packages over Go packages).
package scope

import "plantuml-generator/internal/descriptor"

// Resolver turns configured selection criteria into a descriptor set.
//
// Implementations must return a deduplicated set (one descriptor per
// qualified name). Order is irrelevant: the generator sorts descriptors
// itself. When the root-based strategy is used, every individual scope root
// that yields zero descriptors must fail the whole call with a
// *ResolutionError.
type Resolver interface {
	Resolve() ([]*descriptor.Type, error)
}

// Criteria is the provider-independent part of the selection input. Either
// IncludePattern is set (and applied against all discoverable qualified
// names), or Roots is set with an optional ExcludePattern applied after
// inclusion. The two strategies are mutually exclusive; config validation
// enforces that before a resolver is built.
type Criteria struct {
	Roots          []string
	IncludePattern string
	ExcludePattern string
}
