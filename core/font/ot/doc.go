/*
Package ot provides access to OpenType font tables.

The package does not fully interpret a font. It parses the table
directory and gives typed access to the handful of tables that proof
generation needs: character-to-glyph mapping (cmap), naming (name),
style metadata (OS/2), variation axes (fvar), glyph names (post),
outline presence (glyf/loca and CFF) and layout feature tags
(GSUB/GPOS). Shaping and rasterization are out of scope.

All parsing works on the font's raw bytes. Offsets found in the binary
are never trusted; every access is bounds-checked and a broken table
yields an error instead of a panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 The typeproof authors

*/
package ot

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeproof.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.fonts")
}
