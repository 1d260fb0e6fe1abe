/*
Package prooftext synthesizes the text content of proofs.

Three kinds of content come out of this package: curated sample texts
for fonts with a full basic Latin repertoire, generated text for fonts
with partial or non-Latin repertoires (backed by the words package),
and structural strings such as the spacing pattern and the Arabic
contextual-forms sequence. Generation is seeded, so identical inputs
always produce identical proofs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package prooftext

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.words'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.words")
}
