/*
Package words generates proof text from embedded vocabularies.

A Sampler draws words from a per-language vocabulary, restricted by the
characters a font can render and by positional constraints (a required
first letter, last letter or interior letter). Sampling is seeded and
fully deterministic: the same seed and constraints always produce the
same words, so a regenerated proof is comparable to its predecessor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package words

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.words'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.words")
}
