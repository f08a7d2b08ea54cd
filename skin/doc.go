/*
Package skin implements the element tree of skin documents.

A skin is a package (a folder, or a file system) containing a file skin.xml
plus referenced resources. The XML document is parsed into a tree of typed
elements. Every element kind is described by a MetaElement, registered with
a Library under its (case-insensitive) tag name. Meta elements form an
inheritance graph paralleling the Go types, which is used for schema
checks and for type-filtered lookups.

The root of a skin document is a Model. A model organizes its children
into fixed sections (Includes, Imports, Resources, Styles, Forms,
WindowClasses, Workspaces) and resolves named resources and styles, caching
the runtime objects it creates. Models may contain named sub-models
("scopes") for includes which should not share the root's namespace.

Elements are merged when documents are included or imported: an element
with the same name as an existing one either merges into it (sections do)
or replaces it. Replacing emits a skin warning unless the incoming element
is marked with override="true".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package skin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'skinwiz.skin'
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.skin")
}
