// ABOUTME: Domain record types for decoded memory snapshots
// ABOUTME: Allocation records, stack frames, and grouping indexes

package snapshot

import "strings"

// NoFrame marks an allocation record that carries no capture frame number
const NoFrame = -1

// AllocationRecord is one decoded allocation from a memory snapshot.
// HashID identifies the allocating call stack.
type AllocationRecord struct {
	Size       uint64
	HashID     string
	Address    string
	ObjectType string
	Frame      int
}

// StackFrame is one frame of an allocating call stack
type StackFrame struct {
	Address    string
	Module     string
	Function   string
	SourceInfo string
}

// StackTrace is a full call stack keyed by its hash. Frames are ordered
// innermost first.
type StackTrace struct {
	HashID string
	Frames []StackFrame
}

// TopFrame returns the innermost frame, false if the trace is empty
func (t StackTrace) TopFrame() (StackFrame, bool) {
	if len(t.Frames) == 0 {
		return StackFrame{}, false
	}
	return t.Frames[0], true
}

// CallPath joins the frame functions innermost-first for display
func (t StackTrace) CallPath() string {
	parts := make([]string, len(t.Frames))
	for i, f := range t.Frames {
		parts[i] = f.Function
	}
	return strings.Join(parts, " -> ")
}

// Index provides per-frame and per-stack grouping over a record set
type Index struct {
	records []AllocationRecord
	byFrame map[int][]AllocationRecord
	byHash  map[string][]AllocationRecord
}

// NewIndex builds grouping indexes over records
func NewIndex(records []AllocationRecord) *Index {
	idx := &Index{
		records: records,
		byFrame: make(map[int][]AllocationRecord),
		byHash:  make(map[string][]AllocationRecord),
	}
	for _, r := range records {
		if r.Frame != NoFrame {
			idx.byFrame[r.Frame] = append(idx.byFrame[r.Frame], r)
		}
		idx.byHash[r.HashID] = append(idx.byHash[r.HashID], r)
	}
	return idx
}

// FrameAllocations returns all allocations recorded in one capture frame
func (x *Index) FrameAllocations(frame int) []AllocationRecord {
	return x.byFrame[frame]
}

// HashAllocations returns all allocations from one call stack
func (x *Index) HashAllocations(hash string) []AllocationRecord {
	return x.byHash[hash]
}

// FrameTotalSize returns the bytes allocated in one capture frame
func (x *Index) FrameTotalSize(frame int) uint64 {
	var total uint64
	for _, r := range x.byFrame[frame] {
		total += r.Size
	}
	return total
}

// HashTotalSize returns the bytes allocated by one call stack
func (x *Index) HashTotalSize(hash string) uint64 {
	var total uint64
	for _, r := range x.byHash[hash] {
		total += r.Size
	}
	return total
}

// FrameRange returns the lowest and highest frame numbers seen, (0, 0)
// when no record carries a frame
func (x *Index) FrameRange() (int, int) {
	first := true
	var lo, hi int
	for frame := range x.byFrame {
		if first {
			lo, hi = frame, frame
			first = false
			continue
		}
		if frame < lo {
			lo = frame
		}
		if frame > hi {
			hi = frame
		}
	}
	return lo, hi
}
