/*
Package object defines the controller side of skins.

Views created from a skin are bound to controllers: objects exposing named
properties, parameters and methods, arranged in a tree and addressed by
slash-separated paths ("transport/volume"). The skin wizard looks up
controllers and properties through the interfaces of this package only;
applications provide their own implementations. Node is a generic
implementation, used by tools and tests, which may be populated from JSON.

Objects may be subjects, i.e., they send messages to registered observers
when a property or parameter changes. Triggers and style selectors observe
controllers this way.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package object

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.object'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.object")
}
