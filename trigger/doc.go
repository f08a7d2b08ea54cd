/*
Package trigger implements declarative event bindings of visual styles.

A trigger watches a live object and executes a list of actions when either
a property takes a given value or a named event message arrives. Triggers
are parsed once from a skin and act as prototypes: for every object a
style is applied to, the prototype is cloned and the clone is activated on
the object. Clones share their actions with the prototype; only the
activation state is per instance.

Actions never fail visibly. If a target cannot be resolved, a skin warning
is emitted and the action is skipped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trigger

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.trigger'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.trigger")
}
