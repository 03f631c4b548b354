package damage

// changeBoxSubtree is the set of flags which will change a node's box sub-tree.
const changeBoxSubtree = Repair | Rebuild

// WillChangeBoxSubtree returns whether the node's box sub-tree will be changed.
func (d Damage) WillChangeBoxSubtree() bool {
	return d.Intersects(changeBoxSubtree)
}

// PropagateUp returns the damage appropriate for the parent of a node with
// damage d. An ancestor of a re-built node does not need to be re-built
// itself, but has to repair its box sub-tree. All other flags are passed
// on unchanged.
//
// PropagateUp is used when folding the damage of children into their parent,
// bottom-up.
func (d Damage) PropagateUp() Damage {
	up := d
	if d.Contains(Rebuild) {
		up.Remove(Rebuild)
		up.Insert(Repair)
	}
	return up
}

// PropagateDown returns the damage appropriate for the children of a node
// with damage d. Structural damage stays with the node where the change
// occurred; reflow and repaint reach the descendents.
//
// PropagateDown is used when folding the damage of a parent into its
// children, top-down.
func (d Damage) PropagateDown() Damage {
	down := d
	down.Remove(changeBoxSubtree)
	return down
}

// RepairDamage returns a damage set indicating that a node's box sub-tree
// needs to be repaired.
func RepairDamage() Damage {
	return Repair
}

// Reconstruct returns a damage set indicating that a node's layout boxes
// have to be re-constructed. This is the damage for newly inserted nodes.
func Reconstruct() Damage {
	return Rebuild
}
