package septree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// etree=[4,4,5,5,5,-1] has one root (node 5) with three children
// (2,3,4), triggering binarization of node 5's third child into a
// virtual split node; node 4 in turn has two ordinary leaf children
// (0,1). Every real row still ends up in exactly one separator (the
// sizes sum to n) and the virtual split node contributes an empty
// separator.
func TestBuildFromEtreeThirdChildBinarized(t *testing.T) {
	tr, err := BuildFromEtree([]int{4, 4, 5, 5, 5, -1})
	require.NoError(t, err)
	require.NoError(t, tr.Check())

	total := 0
	emptySeps := 0
	for i := 0; i < tr.NumSeparators(); i++ {
		sz := tr.SepSize(i)
		total += sz
		if sz == 0 {
			emptySeps++
		}
	}
	require.Equal(t, 6, total)
	require.Equal(t, 1, emptySeps, "binarizing node 5's third child introduces exactly one virtual, empty separator")
	require.Equal(t, tr.NumSeparators()-1, tr.Root())
}

func TestBuildFromEtreeSingleNode(t *testing.T) {
	tr, err := BuildFromEtree([]int{-1})
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.Equal(t, 1, tr.NumSeparators())
	require.Equal(t, 1, tr.SepSize(0))
	require.Equal(t, 0, tr.Root())
}

func TestBuildFromEtreeEmpty(t *testing.T) {
	tr, err := BuildFromEtree(nil)
	require.NoError(t, err)
	require.Equal(t, 0, tr.NumSeparators())
}

func TestBuildFromEtreeChainCollapses(t *testing.T) {
	// a pure chain 0->1->2->-1 collapses into a single separator of size 3.
	tr, err := BuildFromEtree([]int{1, 2, -1})
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.Equal(t, 1, tr.NumSeparators())
	require.Equal(t, 3, tr.SepSize(0))
}

func TestBuildFromEtreeTwoRootsCanonicalized(t *testing.T) {
	// two independent roots (0 and 1) get re-rooted under a virtual node,
	// which becomes the tree's root and contributes an empty separator.
	tr, err := BuildFromEtree([]int{-1, -1})
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.Equal(t, 3, tr.NumSeparators())
	root := tr.Root()
	require.Equal(t, 0, tr.SepSize(root))
	require.Equal(t, root, tr.Parent(0))
	require.Equal(t, root, tr.Parent(1))
}
