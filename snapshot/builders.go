// ABOUTME: Forest builders turning decoded records into comparison inputs
// ABOUTME: Groups allocations by object type, category, and call stack

package snapshot

import "github.com/memscope/memscope/compare"

// noStackFunction labels allocations whose call stack is not in the
// trace table
const noStackFunction = "<no stack>"

// Category names one predefined memory category. ID is the category's
// stable identity, carried through comparison for drill-down.
type Category struct {
	Label string
	ID    int32
}

// GroupByType builds a flat forest with one leaf per allocation record,
// named by object type. The comparison engine aggregates same-typed
// records into one node per type.
func GroupByType(records []AllocationRecord) []*compare.InputNode[ObjectGroupItem] {
	forest := make([]*compare.InputNode[ObjectGroupItem], 0, len(records))
	for _, r := range records {
		forest = append(forest, compare.NewLeaf(ObjectGroupItem{
			TypeName: r.ObjectType,
			Bytes:    r.Size,
		}))
	}
	return forest
}

// GroupByCategory builds one root per category, carrying the category's
// predefined identity, with one leaf per record named by object type.
// Roots appear in first-use order.
func GroupByCategory(records []AllocationRecord, categorize func(AllocationRecord) Category) []*compare.InputNode[CategoryItem] {
	var forest []*compare.InputNode[CategoryItem]
	byLabel := make(map[string]*compare.InputNode[CategoryItem])

	for _, r := range records {
		cat := categorize(r)
		root, ok := byLabel[cat.Label]
		if !ok {
			root = compare.NewBranch(CategoryItem{Label: cat.Label})
			root.ID = cat.ID
			byLabel[cat.Label] = root
			forest = append(forest, root)
		}
		root.Children = append(root.Children, compare.NewLeaf(CategoryItem{
			Label: r.ObjectType,
			Bytes: r.Size,
		}))
	}
	return forest
}

// BuildStackForest builds call-path trees from allocation records and
// their stack traces. The outermost frame of each trace becomes a forest
// root; every record adds one leaf under its innermost frame, so frame
// nodes aggregate the bytes and counts of all allocations below them.
// Records whose hash has no trace become root-level leaves labelled
// "<no stack>".
func BuildStackForest(records []AllocationRecord, traces map[string]StackTrace) []*compare.InputNode[FrameItem] {
	b := &stackBuilder{
		rootIdx:  make(map[string]*compare.InputNode[FrameItem]),
		childIdx: make(map[*compare.InputNode[FrameItem]]map[string]*compare.InputNode[FrameItem]),
	}

	for _, r := range records {
		trace, ok := traces[r.HashID]
		if !ok || len(trace.Frames) == 0 {
			b.roots = append(b.roots, compare.NewLeaf(FrameItem{
				Function: noStackFunction,
				Bytes:    r.Size,
			}))
			continue
		}

		// frames are innermost first; descend from the outermost
		var node *compare.InputNode[FrameItem]
		for i := len(trace.Frames) - 1; i >= 0; i-- {
			node = b.push(node, trace.Frames[i].Function)
		}
		node.Children = append(node.Children, compare.NewLeaf(FrameItem{
			Function: node.Data.Function,
			Bytes:    r.Size,
		}))
	}
	return b.roots
}

// stackBuilder deduplicates frame nodes per level while building
type stackBuilder struct {
	roots    []*compare.InputNode[FrameItem]
	rootIdx  map[string]*compare.InputNode[FrameItem]
	childIdx map[*compare.InputNode[FrameItem]]map[string]*compare.InputNode[FrameItem]
}

// push returns parent's frame node for function, creating it on first
// use. A nil parent addresses the forest root level.
func (b *stackBuilder) push(parent *compare.InputNode[FrameItem], function string) *compare.InputNode[FrameItem] {
	if parent == nil {
		if n, ok := b.rootIdx[function]; ok {
			return n
		}
		n := compare.NewBranch(FrameItem{Function: function})
		b.rootIdx[function] = n
		b.roots = append(b.roots, n)
		return n
	}

	idx := b.childIdx[parent]
	if idx == nil {
		idx = make(map[string]*compare.InputNode[FrameItem])
		b.childIdx[parent] = idx
	}
	if n, ok := idx[function]; ok {
		return n
	}
	n := compare.NewBranch(FrameItem{Function: function})
	idx[function] = n
	parent.Children = append(parent.Children, n)
	return n
}
