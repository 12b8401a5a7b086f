// ABOUTME: Breadth-first reference path walker with cycle detection
// ABOUTME: Builds referencing-path trees with depth and processed-node bounds

package objgraph

import "errors"

// placeholderName substitutes for presentation fields whose lookup failed
const placeholderName = "<Unknown>"

// BuildReferencedBy builds the tree of referencing paths for target: the
// returned roots are target's direct referencers, and each node's
// children are the objects referencing it in turn. Traversal is
// breadth-first and bounded by maxDepth levels and maxProcessed dequeued
// nodes; reaching the node cap yields a valid but truncated result,
// flagged on Result.
//
// A node whose identity already appears among its ancestors is marked
// with the ancestor's ID in CircularRefID and is not expanded further, so
// cyclic graphs terminate by construction. Referencer order from the
// collaborator is preserved, never sorted. Unknown identities are
// skipped; failed presentation lookups degrade to placeholder fields. No
// error ever propagates out of this call.
func BuildReferencedBy(g Graph, target ObjectID, maxDepth, maxProcessed uint32) Result {
	return walk(g, target, maxDepth, maxProcessed, Graph.Referencers)
}

// BuildReferences builds the forward direction: the returned roots are
// the objects target references, expanded through what they reference in
// turn. Bounds and cycle handling match BuildReferencedBy.
func BuildReferences(g Graph, target ObjectID, maxDepth, maxProcessed uint32) Result {
	return walk(g, target, maxDepth, maxProcessed, Graph.References)
}

type queueItem struct {
	node  *PathNode
	depth uint32
}

func walk(g Graph, target ObjectID, maxDepth, maxProcessed uint32, next func(Graph, ObjectID) []ObjectID) Result {
	var res Result
	if g == nil {
		return res
	}

	nextID := int32(0)

	// newNode describes id exactly once: an unknown identity yields nil
	// (the node is skipped), any other lookup failure degrades to
	// placeholder fields.
	newNode := func(id ObjectID, parent *PathNode, depth uint32) *PathNode {
		info, err := g.Describe(id)
		if errors.Is(err, ErrUnknownObject) {
			return nil
		}
		if err != nil {
			info = ObjectInfo{
				Name:      placeholderName,
				TypeName:  placeholderName,
				FieldName: placeholderName,
			}
		}
		n := &PathNode{
			ID:            nextID,
			Object:        id,
			Name:          info.Name,
			TypeName:      info.TypeName,
			FieldName:     info.FieldName,
			Size:          info.Size,
			IsGCRoot:      GCRootReason(g, id, info) != NotRoot,
			Depth:         depth,
			Parent:        parent,
			CircularRefID: NoCircularRef,
		}
		nextID++
		return n
	}

	var queue []queueItem
	for _, id := range next(g, target) {
		root := newNode(id, nil, 0)
		if root == nil {
			continue
		}
		res.Roots = append(res.Roots, root)
		queue = append(queue, queueItem{node: root, depth: 0})
	}

	for len(queue) > 0 {
		if res.Processed >= maxProcessed {
			res.Truncated = true
			break
		}
		item := queue[0]
		queue = queue[1:]
		res.Processed++

		// keep the node but stop expanding at the depth bound
		if maxDepth == 0 || item.depth >= maxDepth-1 {
			continue
		}

		for _, refID := range next(g, item.node.Object) {
			child := newNode(refID, item.node, item.depth+1)
			if child == nil {
				continue
			}
			item.node.Children = append(item.node.Children, child)

			if anc := findAncestor(item.node, refID); anc != nil {
				// back-link into the current path: record it and stop
				// this branch here
				child.CircularRefID = anc.ID
				continue
			}
			queue = append(queue, queueItem{node: child, depth: item.depth + 1})
		}
	}

	return res
}

// findAncestor walks parent links from node upward and returns the first
// entry whose identity equals id, nil if none
func findAncestor(node *PathNode, id ObjectID) *PathNode {
	for n := node; n != nil; n = n.Parent {
		if n.Object == id {
			return n
		}
	}
	return nil
}
