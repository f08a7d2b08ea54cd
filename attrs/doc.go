/*
Package attrs implements typed access to skin attributes.

Skin elements carry their XML attributes as untyped strings. Attributes
is the minimal contract for such a store; typed decoders (Int, Bool, Rect,
Options, ColorCode, …) are built on top of the string representation and
fall back to defaults whenever a value cannot be parsed.

Mutable is the concrete store used by the parser. Resolved decorates a
store with variable substitution and is read-only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attrs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.attrs'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.attrs")
}
