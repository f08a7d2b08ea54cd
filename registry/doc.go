/*
Package registry keeps track of loaded skins and of the places skin packages
are searched in.

A skin package is a folder containing a skin.xml document. Packages import
each other by symbolic name ("@name"), by URL ("scheme://path") or by a path
relative to the importing package. Symbolic names are searched along a fixed
precedence of locations:

	1. developer override locations
	2. registered search locations
	3. the skins folder
	4. the importing package's folder
	5. the application's resources
	6. the framework's resources

The registry is shared by all wizards of an application and guards its state
with a mutex.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.registry'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.registry")
}
