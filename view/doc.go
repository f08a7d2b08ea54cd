/*
Package view implements platform-neutral live views.

Views are what the skin wizard produces from form elements: a tree of
nodes carrying a class (Button, Label, …), a name, resolved attributes, a
size, a visual style and a controller. Rendering views is not a concern of
this module; platform bindings walk the view tree and create native
counterparts.

View builds on top of the general purpose tree.Node, following the
"payload references the node itself" pattern:

    v := view.New("Button", "ok")
    root.AddView(v)
    for _, ch := range root.Views() { … }

Views are observable objects. Triggers of a view's style observe the view
itself, so setting a property on a view may fire style triggers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package view

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.view'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.view")
}
