/*
Package skinwiz builds user interfaces from declarative skin packages.

A skin package is a folder holding a skin.xml document plus the resources
it references. Package skin parses such documents into a tree of typed
elements, package wizard loads packages with their imports, includes and
overlays and instantiates forms into live view trees. Styles, triggers and
animations live in packages style and trigger; the search for packages is
configured in package registry.

The command skinwiz (cmd/skinwiz) loads a package and prints its element
tree or the view tree of a form.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package skinwiz
