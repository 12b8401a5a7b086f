// ABOUTME: Core identity and descriptor types for the snapshot object graph
// ABOUTME: Defines ObjectID, ObjectInfo, and the reference path node structure

package objgraph

// ObjectID is an opaque identity for one object in the snapshot graph.
// Only equality is required of it; no ordering is ever assumed.
type ObjectID uint64

// ObjectInfo carries the presentation and root-classification fields for
// one snapshot object. Lookups producing it may fail per object; the
// walker degrades to placeholders rather than aborting.
type ObjectInfo struct {
	Name      string
	TypeName  string
	FieldName string // name of the field holding the reference, if known
	Size      int64

	// root-classification inputs
	SceneRoot        bool  // designated scene/hierarchy root object
	RootTransform    bool  // designated root transform
	NativeRootRef    int64 // platform-assigned root-reference id, 0 if none
	IsTypeDescriptor bool  // reflection/type descriptor object
}

// NoCircularRef marks a path node that does not reference an ancestor
const NoCircularRef int32 = -1

// PathNode is one node of a referencing-path tree. IDs are assigned
// monotonically within a single traversal. Parent is a relation to an
// already-created node and never owning; Children are owned.
type PathNode struct {
	ID            int32
	Object        ObjectID
	Name          string
	TypeName      string
	FieldName     string
	Size          int64
	IsGCRoot      bool
	Depth         uint32
	Parent        *PathNode
	Children      []*PathNode
	CircularRefID int32 // ID of the ancestor this node circularly references
}

// Result is the outcome of one traversal. Truncated reports that the
// processed-node cap stopped the walk while work remained queued, so the
// tree is valid but incomplete.
type Result struct {
	Roots     []*PathNode
	Processed uint32
	Truncated bool
}
