// ABOUTME: ComparableItem adapters for the three snapshot domains
// ABOUTME: Memory categories, object-type groups, and call-stack frames

package snapshot

// CategoryItem adapts a named memory category for comparison
type CategoryItem struct {
	Label string
	Bytes uint64
}

func (c CategoryItem) Name() string          { return c.Label }
func (c CategoryItem) ExclusiveSize() uint64 { return c.Bytes }

// ObjectGroupItem adapts an object-type group for comparison
type ObjectGroupItem struct {
	TypeName string
	Bytes    uint64
}

func (o ObjectGroupItem) Name() string          { return o.TypeName }
func (o ObjectGroupItem) ExclusiveSize() uint64 { return o.Bytes }

// FrameItem adapts one call-stack frame for comparison. Bytes are the
// allocation bytes attributed directly to the frame, zero for interior
// frames.
type FrameItem struct {
	Function string
	Bytes    uint64
}

func (f FrameItem) Name() string          { return f.Function }
func (f FrameItem) ExclusiveSize() uint64 { return f.Bytes }
