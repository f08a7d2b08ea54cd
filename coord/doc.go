/*
Package coord holds the coordinate types of skin documents.

Skin attributes describe geometry either in plain design coordinates,
as percentages of the enclosing container, or leave it to the layout
("auto"). DesignCoord is an option type for these cases, in the spirit of
CSS dimensions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package coord
