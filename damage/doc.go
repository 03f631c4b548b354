/*
Package damage implements restyle damage, a hint telling layout which kind of
operations may be needed after incremental style changes.

Overview

Whenever the styles of a node in the styled tree change, the change is
classified (see package restyle) and condensed into a Damage value. Damage is
a small bit-set over four flags, ordered by severity:

   Repaint   repaint pixels only                  propagates up and down
   Reflow    re-compute geometry                  propagates up and down
   Repair    repair the node's box sub-tree       propagates up
   Rebuild   re-construct the node's layout boxes propagates up (as Repair)

Damage values are plain values: copying them is cheap, and all operations
are allocation-free. While walking the layout tree, a node's damage is
folded into its parent with PropagateUp (bottom-up) and into its children
with PropagateDown (top-down).

The textual form of a damage value (see Damage.String) is stable and may be
used for diagnostics and snapshot tests.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package damage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.damage'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.damage")
}
