/*
Package proof assembles and orchestrates proof documents.

The package owns the registry of proof types, their per-proof settings,
the construction of renderable sections from a font's categorized
repertoire, and the session that iterates fonts, style instances and
selected proofs into a sequence of rendered pages. Rendering itself is
delegated to a backend through the Renderer interface; this package
only decides what to render.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package proof

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.proof'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.proof")
}
