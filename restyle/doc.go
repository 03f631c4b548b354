/*
Package restyle classifies the damage a style change does to the layout of
a node.

After a style recalculation, every node carries two computed style
snapshots: the one it had before and the one it has now. A Classifier
compares both snapshots and decides which layout work is necessary to make
the rendered output consistent with the new style. The work is expressed as
a damage.Damage value.

Classification walks an ordered chain of rule categories, most severe
first, and stops at the first category with a matching rule:

    1. the original display mode changed            => Rebuild
    2. an inline box changed a rebuild_inline rule  => Rebuild
    3. a reflow rule matched                        => Reflow
    4. a reflow_out_of_flow rule matched            => Reflow
    5. a repaint rule matched                       => Repaint

Regardless of the chain, a change in custom properties always adds Repaint.

Rules are not hard-coded. Clients construct an immutable Catalog of rules
and hand it to NewClassifier. Package computed provides a catalog for
property maps of package style.

Classifiers do not hold mutable state and may be used concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package restyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.restyle'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.restyle")
}
