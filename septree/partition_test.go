package septree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// balancedSeptree builds a 7-separator full binary tree: leaves 0,1
// under 2; leaves 3,4 under 5; 2 and 5 under root 6. Every etree index
// already satisfies the post-order invariant (children precede
// parents) so BuildFromEtree needs no binarization or chain folding,
// and separator ids end up identical to etree node indices.
func balancedSeptree(t *testing.T) *Tree {
	t.Helper()
	tr, err := BuildFromEtree([]int{2, 2, 6, 5, 5, 6, -1})
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.Equal(t, 7, tr.NumSeparators())
	require.Equal(t, 6, tr.Root())
	return tr
}

func TestSubtreeBalanced(t *testing.T) {
	tr := balancedSeptree(t)

	sub0, err := tr.Subtree(0, 2)
	require.NoError(t, err)
	require.NoError(t, sub0.Check())
	require.Equal(t, 3, sub0.NumSeparators())

	sub1, err := tr.Subtree(1, 2)
	require.NoError(t, err)
	require.NoError(t, sub1.Check())
	require.Equal(t, 3, sub1.NumSeparators())
}

// Toptree(2) on the balanced 7-separator tree returns a 3-node tree
// whose two leaves correspond to the roots of the two subtrees
// Subtree(0,2)/Subtree(1,2) would produce (separator ids 2 and 5) and
// whose own root corresponds to the full tree's root (id 6).
func TestToptreeBalanced(t *testing.T) {
	tr := balancedSeptree(t)

	top, err := tr.Toptree(2)
	require.NoError(t, err)
	require.NoError(t, top.Check())
	require.Equal(t, 3, top.NumSeparators())

	root := top.Root()
	require.Equal(t, 2, root)
	// both children of the top-tree root are leaves.
	l, r := top.LeftChild(root), top.RightChild(root)
	require.NotEqual(t, -1, l)
	require.NotEqual(t, -1, r)
	require.Equal(t, -1, top.LeftChild(l))
	require.Equal(t, -1, top.LeftChild(r))

	// the leaves' row spans start where each subtree's leftmost
	// descendant starts (0 and 3) and the root's own span is the
	// single row [6,7) that belongs to neither subtree.
	require.Equal(t, 0, top.SepStart(l))
	require.Equal(t, 3, top.SepEnd(l))
	require.Equal(t, 3, top.SepStart(r))
	require.Equal(t, 6, top.SepEnd(r))
	require.Equal(t, 6, top.SepStart(root))
	require.Equal(t, 7, top.SepEnd(root))
}

// The row ranges of the Toptree(P) nodes tile [0, n) with no overlap,
// and each Subtree(p, P) covers exactly as many rows as the
// corresponding top-tree leaf span. Uses an unbalanced tree with an
// empty virtual separator, so the leftmost-descendant span logic is
// exercised across separators of unequal size.
func TestPartitionTiling(t *testing.T) {
	tr, err := BuildFromEtree([]int{4, 4, 5, 5, 5, -1})
	require.NoError(t, err)
	n := tr.SepEnd(tr.NumSeparators() - 1)

	const P = 2
	top, err := tr.Toptree(P)
	require.NoError(t, err)
	require.NoError(t, top.Check())

	// top-tree spans are contiguous and cover [0, n).
	require.Equal(t, 0, top.SepStart(0))
	for i := 1; i < top.NumSeparators(); i++ {
		require.Equal(t, top.SepEnd(i-1), top.SepStart(i), "gap or overlap before top node %d", i)
	}
	require.Equal(t, n, top.SepEnd(top.NumSeparators()-1))

	// each subtree's total row count matches its top-tree leaf span.
	leaf := 0
	for i := 0; i < top.NumSeparators(); i++ {
		if top.LeftChild(i) != -1 {
			continue
		}
		sub, err := tr.Subtree(leaf, P)
		require.NoError(t, err)
		require.NoError(t, sub.Check())
		subRows := sub.SepEnd(sub.NumSeparators() - 1)
		require.Equal(t, top.SepEnd(i)-top.SepStart(i), subRows, "subtree %d row count", leaf)
		leaf++
	}
	require.Equal(t, P, leaf)
}

func TestHSSTreeAttachment(t *testing.T) {
	tr := balancedSeptree(t)
	h := HSSPartitionTree{Size: 10}
	h.Refine(4)
	tr.SetHSSTree(6, h)

	got, ok := tr.HSSTree(6)
	require.True(t, ok)
	require.Len(t, got.Children, 2)
	require.Equal(t, 10, got.Children[0].Size+got.Children[1].Size)

	_, ok = tr.HSSTree(0)
	require.False(t, ok)
}

func TestSubtreeEmptyTree(t *testing.T) {
	tr := &Tree{}
	sub, err := tr.Subtree(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0, sub.NumSeparators())
}

func TestToptreeP1ReturnsSingleRoot(t *testing.T) {
	tr := balancedSeptree(t)
	top, err := tr.Toptree(1)
	require.NoError(t, err)
	require.NoError(t, top.Check())
	require.Equal(t, 1, top.NumSeparators())
	require.Equal(t, 0, top.SepStart(0))
	require.Equal(t, 7, top.SepEnd(0))
}
