/*
Package tree implements an ordered tree of nodes carrying a payload.

Skin documents and the view trees built from them both live on top of this
general purpose tree. Nodes own their children and keep a back-link to their
parent; a node is attached to at most one parent at any time. Re-attaching a
node to another parent detaches it from its previous parent first.

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use (element tree, view tree),
but in Go we resort to composition, thus including a generic tree node in every
node (sub-)type. The node's payload references the enclosing sub-type.

Operations on children are concurrency-safe, but walking a tree while it is
being restructured is not.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skinwiz.tree'.
func tracer() tracing.Trace {
	return tracing.Select("skinwiz.tree")
}
