/*
Package style implements runtime visual styles.

A VisualStyle is a named bundle of colors, metrics, fonts, images, options,
triggers and animations. Styles may inherit from a parent style; lookups
cascade upwards until a style defining the requested key is found.

An Alias is a shared reference to a style which may change at runtime. Views
register themselves as clients of an alias and are notified, in order of
registration, whenever the alias switches to another style. A Selector
switches an alias between a list of styles, driven by a parameter or a
property of a controller.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.style'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.style")
}
