/*
Package tree implements a generic tree of nodes carrying a payload, and
a Walker to operate on (sub-)trees.

Nodes are safe for concurrent modification of their children. Walkers
process the nodes of a tree level by level, with the nodes of one level
handled concurrently by a bounded group of worker goroutines. This
guarantees that parents are processed before their children (top-down)
or children before their parents (bottom-up), which is what folding
operations over a tree require.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.tree")
}
