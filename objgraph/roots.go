// ABOUTME: GC-root classification for snapshot objects
// ABOUTME: Applies an ordered set of checks, first match wins

package objgraph

// RootReason says why an object is considered a GC root, or that it is
// not one.
type RootReason int

const (
	// NotRoot means no classification check matched
	NotRoot RootReason = iota

	// RootSceneObject is a designated scene/hierarchy root object
	RootSceneObject

	// RootTransform is a designated root transform
	RootTransform

	// RootNativeRef carries a non-zero platform-assigned root-reference id
	RootNativeRef

	// RootGCHandle is the target of an active tracked GC handle
	RootGCHandle

	// RootTypeDescriptor is a reflection/type descriptor object
	RootTypeDescriptor

	// RootUnreferenced has no referencers at all. An object nothing points
	// to is treated as a root by convention, since otherwise it would be
	// unreachable garbage rather than a valid node in the graph.
	RootUnreferenced
)

// String returns a short human-readable name for the reason
func (r RootReason) String() string {
	switch r {
	case RootSceneObject:
		return "scene root"
	case RootTransform:
		return "root transform"
	case RootNativeRef:
		return "native root reference"
	case RootGCHandle:
		return "gc handle"
	case RootTypeDescriptor:
		return "type descriptor"
	case RootUnreferenced:
		return "unreferenced"
	default:
		return "not a root"
	}
}

// GCRootReason classifies one object against the ordered root checks.
// The checks run in a fixed order and the first match wins; the
// zero-referencer fallback is evaluated last because it requires a
// graph query.
func GCRootReason(g Graph, id ObjectID, info ObjectInfo) RootReason {
	switch {
	case info.SceneRoot:
		return RootSceneObject
	case info.RootTransform:
		return RootTransform
	case info.NativeRootRef != 0:
		return RootNativeRef
	case g.IsHandleTarget(id):
		return RootGCHandle
	case info.IsTypeDescriptor:
		return RootTypeDescriptor
	}
	if len(g.Referencers(id)) == 0 {
		return RootUnreferenced
	}
	return NotRoot
}
