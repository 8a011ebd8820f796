package septree

// BuildFromEtree constructs a binary separator tree from an elimination
// parent vector:
//
//  1. canonicalize multiple roots by re-rooting all but one under
//     virtual nodes;
//  2. binarize: when a node's third child appears, push the first two
//     children under a new virtual node and make that node's sibling;
//  3. an iterative post-order DFS emits one separator per node with 0
//     or 2 children; single-child "chain" nodes fold their row into
//     the most recently emitted separator instead of starting a new
//     one, so chains collapse into a single front;
//  4. the separators are laid out into the tree's single contiguous
//     arena.
//
// etree[i] is the parent of node i, or -1 (equivalently len(etree)) if
// i is a root. Virtual nodes contribute empty separators.
func BuildFromEtree(etreeIn []int) (*Tree, error) {
	n := len(etreeIn)
	if n == 0 {
		return &Tree{}, nil
	}
	etree := make([]int, n)
	copy(etree, etreeIn)
	for i := range etree {
		if etree[i] == n {
			etree[i] = -1
		}
	}

	nrRoots := 0
	for _, p := range etree {
		if p == -1 {
			nrRoots++
		}
	}
	for r := 0; r < nrRoots-1; r++ {
		hi := len(etree) - 1
		for etree[hi] != -1 {
			hi--
		}
		rootRight := hi
		hi--
		for etree[hi] != -1 {
			hi--
		}
		maxP := len(etree)
		etree = append(etree, -1)
		etree[rootRight] = maxP
		etree[hi] = maxP
	}
	newN := len(etree)

	count := make([]int, newN)
	lch := make([]int, newN)
	rch := make([]int, newN)
	for i := range lch {
		lch[i] = -1
		rch[i] = -1
	}
	for i := 0; i < newN; i++ {
		p := etree[i]
		if p == -1 {
			continue
		}
		count[p]++
		switch count[p] {
		case 1:
			lch[p] = i
		case 2:
			rch[p] = i
		case 3:
			maxP := len(lch)
			lch = append(lch, lch[p])
			rch = append(rch, rch[p])
			lch[p] = maxP
			rch[p] = i
			count = append(count, 0)
			count[p]--
		}
	}

	root := -1
	for i := 0; i < newN; i++ {
		if etree[i] == -1 {
			root = i
			break
		}
	}
	if root == -1 {
		return nil, errNoRoot
	}

	type emitted struct {
		sepEnd, pa, lch, rch int
	}
	var seps []emitted
	var stack, leftStack []int
	stack = append(stack, root)
	prev := -1
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		switch {
		case prev == -1 || lch[prev] == i || rch[prev] == i:
			// moving down into i
			if lch[i] != -1 {
				stack = append(stack, lch[i])
			} else if rch[i] != -1 {
				stack = append(stack, rch[i])
			}
		case lch[i] == prev:
			// moving up from the left child
			if rch[i] != -1 {
				leftStack = append(leftStack, len(seps)-1)
				stack = append(stack, rch[i])
			}
		default:
			// up from the right, or a leaf/chain visit: emit or fold, then pop
			if (lch[i] == -1 && rch[i] == -1) || (lch[i] != -1 && rch[i] != -1) {
				pid := len(seps)
				e := emitted{pa: -1, lch: -1, rch: -1}
				if len(seps) > 0 {
					e.sepEnd = seps[len(seps)-1].sepEnd
				}
				if lch[i] != -1 {
					e.lch = leftStack[len(leftStack)-1]
				}
				if rch[i] != -1 {
					e.rch = pid - 1
				}
				seps = append(seps, e)
				if lch[i] != -1 {
					seps[leftStack[len(leftStack)-1]].pa = pid
					leftStack = leftStack[:len(leftStack)-1]
				}
				if rch[i] != -1 {
					seps[pid-1].pa = pid
				}
			}
			if i < n {
				seps[len(seps)-1].sepEnd++
			}
			stack = stack[:len(stack)-1]
		}
		prev = i
	}

	nbsep := len(seps)
	t := newTree(nbsep)
	for i, e := range seps {
		t.sepEnd[i+1] = e.sepEnd
		t.pa[i] = e.pa
		t.lch[i] = e.lch
		t.rch[i] = e.rch
	}
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}
