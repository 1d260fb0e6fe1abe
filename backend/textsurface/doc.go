/*
Package textsurface renders proof pages as plain text.

It is the simplest backend: one page becomes a framed block of lines on
an io.Writer. It serves terminal preview and testing; print-quality
output comes from a graphical backend.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package textsurface

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.proof'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.proof")
}
