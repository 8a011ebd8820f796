package septree

// HSSPartitionTree is an optional per-separator hierarchical
// partitioning: a recursive split of the separator's rows used by
// rank-structured (HSS) compression of large fronts. A node with no
// children is a leaf block of Size rows; an interior node has exactly
// two children whose sizes sum to its own.
type HSSPartitionTree struct {
	Size     int
	Children []HSSPartitionTree
}

// Refine recursively bisects the partition until every leaf holds at
// most leafSize rows.
func (h *HSSPartitionTree) Refine(leafSize int) {
	h.Children = nil
	if h.Size <= leafSize {
		return
	}
	l := HSSPartitionTree{Size: h.Size / 2}
	r := HSSPartitionTree{Size: h.Size - h.Size/2}
	l.Refine(leafSize)
	r.Refine(leafSize)
	h.Children = []HSSPartitionTree{l, r}
}

// SetHSSTree attaches a partition tree to separator i. Attachments are
// a build-time side map; they are not part of the broadcast arena
// (reserved, per the serialization contract).
func (t *Tree) SetHSSTree(i int, h HSSPartitionTree) {
	if t.hssTrees == nil {
		t.hssTrees = make(map[int]HSSPartitionTree)
	}
	t.hssTrees[i] = h
}

// HSSTree returns the partition tree attached to separator i, if any.
func (t *Tree) HSSTree(i int) (HSSPartitionTree, bool) {
	h, ok := t.hssTrees[i]
	return h, ok
}
