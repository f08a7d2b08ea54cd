/*
Package wizard builds live view trees from skin packages.

A Wizard loads a skin package into a skin.Model: it parses skin.xml, loads
imported packages with nested wizards, merges included fragments into the
document or into named scopes, applies overlays and finally loads the
model's resources. Imports and includes are tracked per load; a document
referenced twice within one load is warned about and skipped.

CreateView instantiates a form. Elements are interpreted top-down: view
elements create views, statements (using, switch, if, foreach, define,
zoom, styleselector) steer the walk. Variables bound by statements live on
a stack and are visible to the statement's subtree only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wizard

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.wizard'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.wizard")
}
