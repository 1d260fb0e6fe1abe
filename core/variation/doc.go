/*
Package variation resolves the style space of a proofing run.

For variable fonts, the package expands the fvar axes into the set of
named axis instances a proof iterates over, honoring per-axis value
overrides. For families of static fonts, it discovers the conventional
style pairings (Regular/Bold, upright/italic) that drive the paired-
styles proofs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package variation

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.fonts")
}
