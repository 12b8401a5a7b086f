// ABOUTME: ComparableItem capability and generic input forests
// ABOUTME: Defines the minimal contract domain nodes must satisfy for comparison

package compare

// Item is the capability the comparison engine requires of a domain node:
// a display name and the bytes attributable to the node alone, excluding
// descendants. Names are not necessarily unique among siblings; the engine
// aggregates same-named siblings into one output node.
type Item interface {
	// Name returns the display name used for matching across snapshots
	Name() string

	// ExclusiveSize returns the bytes attributable to this node alone
	ExclusiveSize() uint64
}

// NoTreeID marks an input node that carries no predefined category identity
const NoTreeID int32 = -1

// InputNode is one node of a snapshot-derived input forest. Only leaves
// contribute exclusive size and count; an interior node's own value is
// always zero and wholly derived from its descendants.
type InputNode[T Item] struct {
	ID       int32 // predefined category identity, NoTreeID if none
	Data     T
	Children []*InputNode[T]
}

// NewLeaf creates an input node with no children
func NewLeaf[T Item](data T) *InputNode[T] {
	return &InputNode[T]{ID: NoTreeID, Data: data}
}

// NewBranch creates an input node with the given children
func NewBranch[T Item](data T, children ...*InputNode[T]) *InputNode[T] {
	return &InputNode[T]{ID: NoTreeID, Data: data, Children: children}
}

// IsLeaf reports whether this node has no children
func (n *InputNode[T]) IsLeaf() bool {
	return len(n.Children) == 0
}
