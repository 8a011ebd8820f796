package septree

import "github.com/samber/lo"

// Subtree extracts the p-th of up to P subtree roots as an independent
// Tree in post-order, renumbered so child ids are contiguous and less
// than their parent. Subtrees are found by repeatedly expanding the
// root downward, always splitting both children of a marked node
// together, until P subtree roots are marked or the tree is
// exhausted.
func (t *Tree) Subtree(p, P int) (*Tree, error) {
	if t.nbsep == 0 {
		return newTree(0), nil
	}
	mark := make([]bool, t.nbsep)
	mark[t.Root()] = true
	nrSubtrees := 1
	var findSubtreeRoots func(node int)
	findSubtreeRoots = func(node int) {
		if mark[node] {
			if nrSubtrees < P && t.lch[node] != -1 && t.rch[node] != -1 {
				mark[t.lch[node]] = true
				mark[t.rch[node]] = true
				mark[node] = false
				nrSubtrees++
			}
		} else {
			if t.lch[node] != -1 {
				findSubtreeRoots(t.lch[node])
			}
			if t.rch[node] != -1 {
				findSubtreeRoots(t.rch[node])
			}
		}
	}
	for nrSubtrees < P && nrSubtrees < t.nbsep {
		before := nrSubtrees
		findSubtreeRoots(t.Root())
		if nrSubtrees == before {
			break
		}
	}

	indices := make([]int, t.nbsep)
	for i := range indices {
		indices[i] = i
	}
	marked := lo.Filter(indices, func(i, _ int) bool { return mark[i] })
	subRoot := -1
	if p < len(marked) {
		subRoot = marked[p]
	}
	if subRoot == -1 {
		return newTree(0), nil
	}

	var count func(node int) int
	count = func(node int) int {
		c := 1
		if t.lch[node] != -1 {
			c += count(t.lch[node])
		}
		if t.rch[node] != -1 {
			c += count(t.rch[node])
		}
		return c
	}
	subSize := count(subRoot)
	sub := newTree(subSize)
	if subSize == 0 {
		return sub, nil
	}
	id := 0
	fillSub(t, subRoot, sub, &id)
	sub.pa[subSize-1] = -1
	if err := sub.Check(); err != nil {
		return nil, err
	}
	return sub, nil
}

// fillSub fills sub with the post-order renumbering of the subtree
// rooted at node in t. *id tracks the next id to assign; by the
// post-order invariant, once both children (if any) have been
// recursed into, *id equals node's own new id.
func fillSub(t *Tree, node int, sub *Tree, id *int) {
	var leftRoot int
	if t.lch[node] != -1 {
		fillSub(t, t.lch[node], sub, id)
		leftRoot = *id - 1
	} else {
		sub.lch[*id] = -1
	}
	if t.rch[node] != -1 {
		fillSub(t, t.rch[node], sub, id)
		sub.rch[*id] = *id - 1
		sub.pa[*id-1] = *id
	} else {
		sub.rch[*id] = -1
	}
	if t.lch[node] != -1 {
		sub.lch[*id] = leftRoot
		sub.pa[leftRoot] = *id
	}
	sub.sepEnd[*id+1] = sub.sepEnd[*id] + (t.sepEnd[node+1] - t.sepEnd[node])
	*id++
}

// Toptree returns a tree of the top min(2P-1, nbsep) nodes around the
// root, whose leaves correspond to the roots of the subtrees Subtree
// would produce. A top-tree leaf's separator spans the entire row range
// of the underlying subtree (from the start of its leftmost descendant
// to its own end) rather than its own real separator size, so that the
// union of Subtree outputs and Toptree tiles [0, n) without overlap.
func (t *Tree) Toptree(P int) (*Tree, error) {
	topNodes := min(max(0, 2*P-1), t.nbsep)
	top := newTree(topNodes)
	if topNodes == 0 {
		return top, nil
	}
	mark := make([]bool, t.nbsep)
	mark[t.Root()] = true
	nrLeafs := 1
	var markTopTree func(node int)
	markTopTree = func(node int) {
		if nrLeafs < P {
			if t.lch[node] != -1 && t.rch[node] != -1 && !mark[t.lch[node]] && !mark[t.rch[node]] {
				mark[t.lch[node]] = true
				mark[t.rch[node]] = true
				nrLeafs++
			} else {
				if t.lch[node] != -1 {
					markTopTree(t.lch[node])
				}
				if t.rch[node] != -1 {
					markTopTree(t.rch[node])
				}
			}
		}
	}
	for nrLeafs < P && nrLeafs < t.nbsep {
		before := nrLeafs
		markTopTree(t.Root())
		if nrLeafs == before {
			break
		}
	}

	var sepSubtree func(node int) int
	sepSubtree = func(node int) int {
		if t.lch[node] != -1 {
			return sepSubtree(t.lch[node])
		}
		return t.sepEnd[node]
	}

	var fillTop func(node int, tid *int)
	fillTop = func(node int, tid *int) {
		mytid := *tid
		*tid--
		if t.rch[node] != -1 && mark[t.rch[node]] {
			top.rch[mytid] = *tid
			top.pa[top.rch[mytid]] = mytid
			fillTop(t.rch[node], tid)
		} else {
			top.rch[mytid] = -1
		}
		if t.lch[node] != -1 && mark[t.lch[node]] {
			top.lch[mytid] = *tid
			top.pa[top.lch[mytid]] = mytid
			fillTop(t.lch[node], tid)
		} else {
			top.lch[mytid] = -1
		}
		if top.rch[mytid] == -1 {
			top.sepEnd[mytid] = sepSubtree(node)
			top.sepEnd[mytid+1] = t.sepEnd[node+1]
		} else {
			top.sepEnd[mytid+1] = top.sepEnd[mytid] + (t.sepEnd[node+1] - t.sepEnd[node])
		}
	}
	tid := topNodes - 1
	fillTop(t.Root(), &tid)
	top.pa[topNodes-1] = -1
	top.sepEnd[topNodes] = t.sepEnd[t.Root()+1]
	return top, nil
}
