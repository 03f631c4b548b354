/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

Every node of a styled tree links an HTML element node with its computed
styles. A node keeps two style snapshots: the styles of the previous
styling run and the styles of the current one. Restyling shifts the
current snapshot to "previous" before installing the new one, thus
allowing clients to compute restyle damage for a node.

Styled nodes carry two damage sets: the damage caused by the node's own
style change, and its effective damage after damage has been propagated
through the tree (see package dom).

Styled nodes are built on top of the general purpose tree type of
package tree. Package cssom creates styled trees from HTML parse trees.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.styledtree")
}
