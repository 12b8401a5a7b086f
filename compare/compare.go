// ABOUTME: Two-pass tree comparison engine for snapshot forests
// ABOUTME: Matches same-named nodes via sorted two-pointer merge, then aggregates bottom-up

package compare

import "sort"

// interNode is an arena-resident intermediate built during the match pass.
// Parent is an arena index rather than a pointer, so the relation is
// non-owning and arbitrarily deep trees stay cycle-safe.
type interNode[T Item] struct {
	parent int // arena index of the output parent, -1 for the synthetic root
	name   string
	treeID int32

	// exclusive during the match pass, promoted in place to inclusive
	// during the aggregate pass
	sizeA, sizeB   uint64
	countA, countB uint32

	srcA, srcB *InputNode[T]

	// surviving child outputs, collected during the aggregate pass in
	// reverse creation order
	outChildren []*Node[T]
}

// frame is one unit of match-pass work: a same-named pair of input nodes
// (nil stands in for a synthetic empty node on a missing side) and the
// arena index of the output node their children merge under.
type frame[T Item] struct {
	a, b *InputNode[T]
	out  int
}

// Build compares two snapshot-derived forests and returns the merged
// comparison forest together with the largest absolute size delta across
// surviving nodes, for downstream scaling.
//
// No ordering is required of the caller; children are sorted by name
// (ordinal byte comparison) at every level, so output is deterministic
// given deterministic input. Same-named siblings are aggregated into one
// output node per name per level. When includeUnchanged is false, a node
// whose subtree totals are identical on both sides is dropped wholesale,
// without re-parenting any changed descendants that survived below it.
//
// Empty or nil forests are legitimate inputs and never an error: a side
// with no nodes simply contributes zero to every matched name, and two
// empty forests yield an empty result with delta 0.
func Build[T Item](forestA, forestB []*InputNode[T], includeUnchanged bool) ([]*Node[T], int64) {
	arena := []interNode[T]{{parent: -1, treeID: NoTreeID}}

	// Match pass: top-down over explicit frontier stacks, no recursion.
	// Input forests can be arbitrarily deep.
	stack := []frame[T]{{
		a:   &InputNode[T]{Children: forestA},
		b:   &InputNode[T]{Children: forestB},
		out: 0,
	}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ca := sortedChildren(fr.a)
		cb := sortedChildren(fr.b)

		// Two-pointer merge over the name-sorted child lists. The side
		// whose current name is smaller contributes an empty run; equal
		// names drain all consecutive same-named siblings from both
		// sides into a single output node.
		i, j := 0, 0
		for i < len(ca) || j < len(cb) {
			var name string
			switch {
			case i >= len(ca):
				name = cb[j].Data.Name()
			case j >= len(cb):
				name = ca[i].Data.Name()
			default:
				name = ca[i].Data.Name()
				if bn := cb[j].Data.Name(); bn < name {
					name = bn
				}
			}

			node := interNode[T]{parent: fr.out, name: name, treeID: NoTreeID}

			// Only leaves carry exclusive size and count; a non-leaf
			// member's value is captured recursively through expansion.
			var expandA, expandB *InputNode[T]
			for i < len(ca) && ca[i].Data.Name() == name {
				c := ca[i]
				if c.IsLeaf() {
					node.sizeA += c.Data.ExclusiveSize()
					node.countA++
					if node.srcA == nil {
						node.srcA = c
					}
				} else if expandA == nil {
					expandA = c
				}
				if node.treeID == NoTreeID && c.ID != NoTreeID {
					node.treeID = c.ID
				}
				i++
			}
			for j < len(cb) && cb[j].Data.Name() == name {
				c := cb[j]
				if c.IsLeaf() {
					node.sizeB += c.Data.ExclusiveSize()
					node.countB++
					if node.srcB == nil {
						node.srcB = c
					}
				} else if expandB == nil {
					expandB = c
				}
				if node.treeID == NoTreeID && c.ID != NoTreeID {
					node.treeID = c.ID
				}
				j++
			}

			arena = append(arena, node)
			if expandA != nil || expandB != nil {
				stack = append(stack, frame[T]{a: expandA, b: expandB, out: len(arena) - 1})
			}
		}
	}

	// Aggregate pass: nodes were appended parent-first, so a reverse
	// sweep visits every child before its parent. Each node's exclusive
	// values are promoted to inclusive exactly once, then folded into
	// its parent.
	var largest int64
	for idx := len(arena) - 1; idx >= 1; idx-- {
		nd := &arena[idx]
		parent := &arena[nd.parent]
		parent.sizeA += nd.sizeA
		parent.sizeB += nd.sizeB
		parent.countA += nd.countA
		parent.countB += nd.countB

		out := &Node[T]{
			Name:    nd.name,
			TreeID:  nd.treeID,
			SizeA:   nd.sizeA,
			SizeB:   nd.sizeB,
			CountA:  nd.countA,
			CountB:  nd.countB,
			SourceA: nd.srcA,
			SourceB: nd.srcB,
		}
		if !includeUnchanged && !out.HasChanged() {
			// Dropped wholesale: surviving children are not re-parented.
			continue
		}

		out.Path = itemPath(arena, idx)
		reverseNodes(nd.outChildren)
		out.Children = nd.outChildren
		parent.outChildren = append(parent.outChildren, out)

		if d := out.SizeDelta(); d > largest {
			largest = d
		} else if -d > largest {
			largest = -d
		}
	}

	roots := arena[0].outChildren
	reverseNodes(roots)
	return roots, largest
}

// sortedChildren returns a name-sorted copy of a node's children. The
// caller's slices are never reordered. A nil node stands in for a
// synthetic empty side and has no children.
func sortedChildren[T Item](n *InputNode[T]) []*InputNode[T] {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	out := make([]*InputNode[T], len(n.Children))
	copy(out, n.Children)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Data.Name() < out[j].Data.Name()
	})
	return out
}

// itemPath walks parent indices up to (but excluding) the synthetic root
// and returns the names in root-to-node order.
func itemPath[T Item](arena []interNode[T], idx int) []string {
	depth := 0
	for a := idx; a != 0; a = arena[a].parent {
		depth++
	}
	path := make([]string, depth)
	for a := idx; a != 0; a = arena[a].parent {
		depth--
		path[depth] = arena[a].name
	}
	return path
}

func reverseNodes[T Item](nodes []*Node[T]) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
