/*
Package skindbg implements helpers to debug skin documents and view trees.

ElementTree and ViewTree render a tree as indented text, ToGraphViz writes
a skin element tree in GraphViz (DOT) format, with a table of attributes
for every element.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package skindbg
