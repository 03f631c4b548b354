/*
Package dom computes restyle damage for styled document trees.

Overview

After a document has been re-styled, the layout engine has to find out how
much of its work is invalidated by the style changes. This package
classifies the style change of every node of a styled tree (see package
styledtree) and propagates the resulting damage through the tree:

    summary, err := dom.Restyle(root, classifier, sheets...)

Restyling runs in three passes over the tree:

   1. re-style: compute new styles for every node, keeping the previous ones
   2. classify: compute the damage of every node from its previous and its
      current styles (the node's "own" damage)
   3. propagate: fold damage of children into their parents, bottom-up,
      then fold damage of parents into their children, top-down

Every pass operates on tree levels, with all nodes of a level processed
concurrently. Propagation bottom-up turns a Rebuild of a child into a Repair
of its ancestors, whereas propagation top-down drops structural damage and
hands down Reflow and Repaint.

Tree Implementation

Styling and layout of HTML/CSS involves a lot of operations on different trees.
We implement the various trees on top of a general purpose tree type
(package tree), which offers concurrent operations to manipluate
tree nodes.

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use (styled tree, layout tree,
render tree), but in Go we resort to composition, thus including a
generic tree node in every node (sub-)type. The downside of this approach
is that we will have to provide an adapter for every node sub-type
to return the sub-type from the generic type.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'restyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("restyle.dom")
}
