/*
Package font is for typeface and font handling.

A "scalable font" is a variant of a typeface with a certain weight,
slant, etc., e.g. "Helvetica Bold". Proofing works on scalable fonts:
it loads their binaries, inspects their tables through the ot
sub-package and derives the character repertoire and style metadata
that drive proof content.

Fonts are cached in a Registry owned by the proofing session. The
registry is explicit state: callers create it, pass it around and
invalidate entries when font files change on disk. There is no global
registry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.fonts")
}
