// ABOUTME: Output node type for the merged comparison forest
// ABOUTME: Carries inclusive sizes/counts per side plus derived deltas

package compare

// Node is one node of the merged comparison forest. All sizes and counts
// are inclusive, aggregated over the whole subtree during the second pass.
type Node[T Item] struct {
	Name string

	// Path holds the names from the forest root down to this node,
	// excluding the synthetic root
	Path []string

	// TreeID is inherited from a matched predefined-category input node,
	// NoTreeID otherwise
	TreeID int32

	SizeA  uint64 // inclusive bytes in snapshot A
	SizeB  uint64 // inclusive bytes in snapshot B
	CountA uint32 // inclusive item count in snapshot A
	CountB uint32 // inclusive item count in snapshot B

	Children []*Node[T]

	// SourceA and SourceB point at the first matched source leaf on each
	// side, for downstream drill-down. Referenced, never owned; nil when
	// the name only appeared on the other side.
	SourceA *InputNode[T]
	SourceB *InputNode[T]
}

// SizeDelta returns the signed byte change from snapshot A to snapshot B
func (n *Node[T]) SizeDelta() int64 {
	return int64(n.SizeB) - int64(n.SizeA)
}

// HasChanged reports whether this node differs between the two snapshots
func (n *Node[T]) HasChanged() bool {
	return n.SizeDelta() != 0 || n.CountA != n.CountB
}
