// ABOUTME: Graph collaborator interface and in-memory snapshot graph
// ABOUTME: Stores objects with forward pointers and a derived reverse-edge index

package objgraph

import (
	"errors"
	"sync"
)

// ErrUnknownObject is returned by Describe for an identity that is not
// present in the graph.
var ErrUnknownObject = errors.New("object not present in snapshot graph")

// Graph is the read-only query collaborator both walk directions depend
// on. Implementations must be immutable for the session or safe for
// concurrent reads; the walker never mutates the graph and may call each
// query repeatedly.
type Graph interface {
	// Referencers returns the identities of objects that reference id
	Referencers(id ObjectID) []ObjectID

	// References returns the identities of objects that id references
	References(id ObjectID) []ObjectID

	// Describe returns the presentation fields for id. It returns
	// ErrUnknownObject for an identity not in the graph; any other error
	// means the lookup failed and the caller should fall back to
	// placeholder values.
	Describe(id ObjectID) (ObjectInfo, error)

	// IsHandleTarget reports whether id is the target of an active
	// tracked GC handle
	IsHandleTarget(id ObjectID) bool
}

// SnapshotObject is one object record in a SnapshotGraph
type SnapshotObject struct {
	ID   ObjectID
	Info ObjectInfo
	Refs []ObjectID // identities this object references
}

// SnapshotGraph is an in-memory Graph implementation. Objects and handle
// targets are added while loading a snapshot; the first query freezes the
// graph and derives the reverse-edge index. Reverse edges are listed in
// object insertion order so query results are deterministic across runs.
type SnapshotGraph struct {
	mu      sync.RWMutex
	objects map[ObjectID]*SnapshotObject
	order   []ObjectID
	reverse map[ObjectID][]ObjectID
	handles map[ObjectID]struct{}
	frozen  bool
}

// NewSnapshotGraph creates an empty snapshot graph
func NewSnapshotGraph() *SnapshotGraph {
	return &SnapshotGraph{
		objects: make(map[ObjectID]*SnapshotObject),
		handles: make(map[ObjectID]struct{}),
	}
}

// AddObject adds an object to the graph. Adding after the graph has been
// frozen is ignored.
func (g *SnapshotGraph) AddObject(obj *SnapshotObject) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return
	}
	if _, exists := g.objects[obj.ID]; !exists {
		g.order = append(g.order, obj.ID)
	}
	g.objects[obj.ID] = obj
}

// AddHandleTarget records id as the target of an active GC handle
func (g *SnapshotGraph) AddHandleTarget(id ObjectID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return
	}
	g.handles[id] = struct{}{}
}

// Freeze makes the graph immutable and builds the reverse-edge index.
// It is called implicitly by the first query.
func (g *SnapshotGraph) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.freezeLocked()
}

func (g *SnapshotGraph) freezeLocked() {
	if g.frozen {
		return
	}
	g.reverse = make(map[ObjectID][]ObjectID)
	for _, id := range g.order {
		for _, target := range g.objects[id].Refs {
			g.reverse[target] = append(g.reverse[target], id)
		}
	}
	g.frozen = true
}

// NumObjects returns the total number of objects in the graph
func (g *SnapshotGraph) NumObjects() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objects)
}

// Referencers returns the objects that reference id, in insertion order
func (g *SnapshotGraph) Referencers(id ObjectID) []ObjectID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.freezeLocked()
	return g.reverse[id]
}

// References returns the objects id references, in recorded order
func (g *SnapshotGraph) References(id ObjectID) []ObjectID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.freezeLocked()
	if obj, ok := g.objects[id]; ok {
		return obj.Refs
	}
	return nil
}

// Describe returns the presentation fields for id
func (g *SnapshotGraph) Describe(id ObjectID) (ObjectInfo, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if obj, ok := g.objects[id]; ok {
		return obj.Info, nil
	}
	return ObjectInfo{}, ErrUnknownObject
}

// IsHandleTarget reports whether id is the target of an active GC handle
func (g *SnapshotGraph) IsHandleTarget(id ObjectID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.handles[id]
	return ok
}
