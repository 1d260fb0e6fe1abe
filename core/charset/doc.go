/*
Package charset analyzes and classifies the character repertoire of a font.

A repertoire — the set of characters a font can actually render — is
bucketed by Unicode general category, by script, by accent status and by
membership in fixed Arabic/Farsi letter templates. The resulting
categorization drives all downstream proof-content generation: which
characters appear in a character-set proof, which letters seed generated
words, whether Arabic proofs are available at all.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package charset

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.charset'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.charset")
}
