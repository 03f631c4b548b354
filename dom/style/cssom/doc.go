/*
Package cssom provides functionality for CSS styling.

Status

This is a minimal styling engine, sufficient for creating styled trees
whose restyle damage may then be computed. It supports selector matching,
specificity, !important and style attributes. It does not support media
queries, pseudo-elements, shorthand properties other than the box
properties, or @-rules.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Function Style creates a styled tree (package styledtree) from an HTML parse
tree and a list of stylesheets. Function Restyle re-styles an existing styled
tree, keeping the styles of the previous run. Restyling is done top-down,
with all nodes of a tree level styled concurrently.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

Selectors are matched with the great work of
https://godoc.org/github.com/andybalholm/cascadia.
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation based on douceur may be
found in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'restyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.cssom")
}
