/*
Package vars implements the variable stack of the skin wizard.

Variables are introduced by statements like <define> and <foreach> and are
visible to the subtree of the statement only. They are kept on a stack;
lookup scans from the most recent binding to the oldest, so an inner
binding shadows an outer one of the same name.

Variable references are substituted textually into attribute strings:

    <define w="10"><View width="$w"/></define>

yields a width of "10". The special reference $Theme.<metric> is resolved
against the metrics of the current theme.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vars

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.vars'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.vars")
}
