// Package septree implements SeparatorTree: construction from an
// elimination parent vector, the binary-tree invariants and query
// operations, and the subtree/toptree partitioning used to distribute
// the tree across MPI ranks.
package septree

import (
	"errors"
	"fmt"
)

var errNoRoot = errors.New("septree: no root found (malformed elimination tree)")

// Tree is a binary separator tree. It owns a single contiguous integer
// arena of length 4*nbsep+1, laid out as sep_end (nbsep+1 entries), pa,
// lch, rch (nbsep entries each) so that Broadcast is a single transfer.
// Parent/child pointers are indices into the arena, never owning
// back-references.
type Tree struct {
	nbsep   int
	arena   []int
	sepEnd  []int
	pa      []int
	lch     []int
	rch     []int
	rootIdx int // memoized root, -2 means not yet computed

	hssTrees map[int]HSSPartitionTree
}

func newTree(nbsep int) *Tree {
	arena := make([]int, 4*nbsep+1)
	t := &Tree{
		nbsep:   nbsep,
		arena:   arena,
		sepEnd:  arena[0 : nbsep+1],
		pa:      arena[nbsep+1 : 2*nbsep+1],
		lch:     arena[2*nbsep+1 : 3*nbsep+1],
		rch:     arena[3*nbsep+1 : 4*nbsep+1],
		rootIdx: -2,
	}
	for i := range t.pa {
		t.pa[i] = -1
		t.lch[i] = -1
		t.rch[i] = -1
	}
	return t
}

// NumSeparators returns nbsep, the number of separators in the tree.
func (t *Tree) NumSeparators() int { return t.nbsep }

// SepStart returns the first row/column index of separator i.
func (t *Tree) SepStart(i int) int { return t.sepEnd[i] }

// SepEnd returns the row/column index one past the end of separator i.
func (t *Tree) SepEnd(i int) int { return t.sepEnd[i+1] }

// SepSize returns the number of rows/columns in separator i.
func (t *Tree) SepSize(i int) int { return t.sepEnd[i+1] - t.sepEnd[i] }

// Parent returns separator i's parent, or -1 if i is the root.
func (t *Tree) Parent(i int) int { return t.pa[i] }

// LeftChild returns separator i's left child, or -1 if i is a leaf.
func (t *Tree) LeftChild(i int) int { return t.lch[i] }

// RightChild returns separator i's right child, or -1 if i is a leaf.
func (t *Tree) RightChild(i int) int { return t.rch[i] }

// Root returns (and memoizes) the index of the unique node with Parent
// == -1.
func (t *Tree) Root() int {
	if t.rootIdx == -2 {
		t.rootIdx = -1
		for i := 0; i < t.nbsep; i++ {
			if t.pa[i] == -1 {
				t.rootIdx = i
				break
			}
		}
	}
	return t.rootIdx
}

// Level returns 1 + max(Level(lch[i]), Level(rch[i])), 1 for a leaf.
func (t *Tree) Level(i int) int {
	lvl := 0
	if t.lch[i] != -1 {
		lvl = t.Level(t.lch[i])
	}
	if t.rch[i] != -1 {
		if r := t.Level(t.rch[i]); r > lvl {
			lvl = r
		}
	}
	return lvl + 1
}

// Levels returns Level(Root()), or 0 for an empty tree.
func (t *Tree) Levels() int {
	if t.nbsep == 0 {
		return 0
	}
	return t.Level(t.Root())
}

// Check validates the tree's structural invariants: exactly one root,
// every non-root is a recognized child of its parent, every node has 0
// or 2 children, 2L-1 == nbsep for L leaves, and sep_end is
// non-decreasing.
func (t *Tree) Check() error {
	if t.nbsep == 0 {
		return nil
	}
	roots := 0
	for i := 0; i < t.nbsep; i++ {
		if t.pa[i] == -1 {
			roots++
		}
	}
	if roots != 1 {
		return fmt.Errorf("septree: found %d roots, want 1", roots)
	}
	leaves := 0
	for i := 0; i < t.nbsep; i++ {
		if t.pa[i] != -1 && t.lch[t.pa[i]] != i && t.rch[t.pa[i]] != i {
			return fmt.Errorf("septree: node %d is not a recognized child of its parent %d", i, t.pa[i])
		}
		if (t.lch[i] == -1) != (t.rch[i] == -1) {
			return fmt.Errorf("septree: node %d has exactly one child", i)
		}
		if t.lch[i] == -1 && t.rch[i] == -1 {
			leaves++
		}
		if t.sepEnd[i+1] < t.sepEnd[i] {
			return fmt.Errorf("septree: sep_end not non-decreasing at %d", i)
		}
	}
	if 2*leaves-1 != t.nbsep {
		return fmt.Errorf("septree: 2*leaves-1=%d != nbsep=%d", 2*leaves-1, t.nbsep)
	}
	return nil
}

// Print writes a plain tabular dump of (i, pa, lch, rch, sep range).
func (t *Tree) Print(w interface{ Write([]byte) (int, error) }) {
	fmt.Fprintln(w, "i\tpa\tlch\trch\tsep")
	for i := 0; i < t.nbsep; i++ {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d/%d\n", i, t.pa[i], t.lch[i], t.rch[i], t.sepEnd[i], t.sepEnd[i+1])
	}
}

// Stats summarizes a tree: level count, average separator size,
// empty-separator count, and the imbalance ratio (max(left subtree,
// right subtree)/min for an internal node, or the larger subtree's size
// when the smaller one is empty). AvgImbalance and MaxImbalance are
// taken over all nodes, each leaf counting as 1.
type Stats struct {
	Levels       int
	AverageSize  float64
	EmptySeps    int
	AvgImbalance float64
	MaxImbalance float64
}

// Printm computes Stats; the caller decides how to render them.
func (t *Tree) Printm() Stats {
	if t.nbsep == 0 {
		return Stats{}
	}
	var st Stats
	st.Levels = t.Levels()
	var total float64
	for i := 0; i < t.nbsep; i++ {
		sz := t.sepEnd[i+1] - t.sepEnd[i]
		total += float64(sz)
		if sz == 0 {
			st.EmptySeps++
		}
	}
	st.AverageSize = total / float64(t.nbsep)

	subtreeSize := make([]int, t.nbsep)
	imbalance := make([]float64, t.nbsep)
	var compute func(node int)
	compute = func(node int) {
		subtreeSize[node] = t.sepEnd[node+1] - t.sepEnd[node]
		if t.lch[node] != -1 {
			compute(t.lch[node])
			subtreeSize[node] += subtreeSize[t.lch[node]]
		}
		if t.rch[node] != -1 {
			compute(t.rch[node])
			subtreeSize[node] += subtreeSize[t.rch[node]]
		}
		imbalance[node] = 1
		if t.lch[node] != -1 && t.rch[node] != -1 {
			l, r := subtreeSize[t.lch[node]], subtreeSize[t.rch[node]]
			hi, lo := l, r
			if r > l {
				hi, lo = r, l
			}
			if lo == 0 {
				imbalance[node] = float64(hi)
			} else {
				imbalance[node] = float64(hi) / float64(lo)
			}
		}
	}
	compute(t.Root())
	var avgImb float64
	for i := 0; i < t.nbsep; i++ {
		avgImb += imbalance[i]
		if imbalance[i] > st.MaxImbalance {
			st.MaxImbalance = imbalance[i]
		}
	}
	st.AvgImbalance = avgImb / float64(t.nbsep)
	return st
}

// Broadcast returns the tree's contiguous integer arena for
// transmission as one buffer (e.g. via MPI_Bcast from rank 0).
// FromArena is its inverse on the receiving end. Attached HSS partition
// trees are not part of the arena.
func (t *Tree) Broadcast() []int {
	return t.arena
}

// FromArena reconstructs a Tree from a buffer produced by Broadcast.
func FromArena(arena []int) (*Tree, error) {
	if len(arena) == 0 {
		return &Tree{}, nil
	}
	if (len(arena)-1)%4 != 0 {
		return nil, fmt.Errorf("septree: arena length %d is not 4*nbsep+1", len(arena))
	}
	nbsep := (len(arena) - 1) / 4
	t := newTree(nbsep)
	copy(t.arena, arena)
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}
