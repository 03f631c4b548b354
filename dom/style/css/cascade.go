package css

import (
	"github.com/npillmayer/restyle/dom/style"
	"golang.org/x/net/html"
)

// ComputeProperty gets the computed value of a property for a node, given the
// node's local (cascaded) property map and the already computed property map
// of its parent. parent may be nil for the root node.
//
// Computation follows CSS semantics for inheritance:
//
//   - an explicit value of "inherit" takes the parent's value
//   - an explicit value of "initial" takes the user-agent default
//   - an unset property is inherited if the property is an inherited one
//     (see style.IsCascading), otherwise it gets the user-agent default
//
// The user-agent default for "display" depends on the HTML element h.
func ComputeProperty(local, parent *style.PropertyMap, h *html.Node, key string) style.Property {
	p, _ := local.Property(key)
	switch {
	case p.IsInherit():
		return inherited(parent, h, key)
	case p.IsInitial():
		return style.GetUserAgentDefaultProperty(h, key)
	case !p.IsEmpty():
		return p
	case style.IsCascading(key) && parent != nil:
		return inherited(parent, h, key)
	}
	return style.GetUserAgentDefaultProperty(h, key)
}

func inherited(parent *style.PropertyMap, h *html.Node, key string) style.Property {
	if p, ok := parent.Property(key); ok && !p.IsEmpty() {
		return p
	}
	var ph *html.Node
	if h != nil {
		ph = h.Parent
	}
	tracer().Debugf("property %s not found in parent, using UA default", key)
	return style.GetUserAgentDefaultProperty(ph, key)
}
