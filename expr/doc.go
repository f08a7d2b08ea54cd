/*
Package expr evaluates the value directives of skin documents.

Values of <define> statements may start with a directive instead of a plain
string:

    @property:path          value of a controller property
    @select:$var:a,b,c      option selected by the numeric value of $var
    @eval:expression        arithmetic expression, e.g. "$w * 2 + 4"

Directives are parsed into a small tagged value (Directive) and evaluated
once against an environment. Variables inside @eval expressions are bound
as typed parameters of the expression, not substituted as text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.expr'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.expr")
}
