/*
Package computed holds computed style snapshots for styled nodes and the
catalog of restyle rules comparing them.

A Style is created from a property map in which every property has its
computed value, i.e., after cascading, inheritance and user-agent defaults
have been applied. Styles are immutable.

The catalog maps CSS properties and property groups onto restyle
categories (see package restyle). A default catalog is built in, custom
catalogs may be loaded from YAML:

    include_defaults: false
    rules:
      - property: table-layout
        category: rebuild_box
      - group: Background
        category: repaint
        compare: color
      - property: width
        category: reflow
        compare: dimen

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package computed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.computed'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.computed")
}
