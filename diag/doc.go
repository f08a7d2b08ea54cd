/*
Package diag collects skin warnings.

Skin documents are designed by humans and frequently contain errors: missing
controllers, unknown styles, includes referencing each other. None of these
abort loading a skin. Instead they are reported to a Sink, which emits them to
the trace (if warnings are enabled) and optionally hands them to a break hook
for debugging.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.diag'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.diag")
}
