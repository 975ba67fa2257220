package hcluster

// Cut applies the first N-k merges and labels the resulting k clusters
// 1..k in order of their lowest member index.
//
// Errors: ErrNilDendrogram, ErrBadK.
func (dg *Dendrogram) Cut(k int) (Labels, error) {
	if err := dg.check(); err != nil {
		return nil, err
	}
	n := dg.N
	if k < 1 || k > n {
		return nil, ErrBadK
	}

	// parent[x] is the id of the cluster x was merged into, or -1.
	parent := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = -1
	}
	for i := 0; i < n-k; i++ {
		parent[dg.Merges[i].Left] = n + i
		parent[dg.Merges[i].Right] = n + i
	}

	labels := make(Labels, n)
	byRoot := make(map[int]int, k)
	next := 1
	var root int
	for leaf := 0; leaf < n; leaf++ {
		root = leaf
		for parent[root] >= 0 {
			root = parent[root]
		}
		lab, ok := byRoot[root]
		if !ok {
			lab = next
			byRoot[root] = lab
			next++
		}
		labels[leaf] = lab
	}

	return labels, nil
}

// Leaves returns leaf ids in left-to-right dendrogram order.
func (dg *Dendrogram) Leaves() []int {
	if dg.check() != nil {
		return nil
	}
	n := dg.N
	out := make([]int, 0, n)
	stack := []int{2*n - 2}
	var x int
	for len(stack) > 0 {
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x < n {
			out = append(out, x)
			continue
		}
		m := dg.Merges[x-n]
		stack = append(stack, m.Right, m.Left)
	}

	return out
}

// check validates the shape of the merge history.
func (dg *Dendrogram) check() error {
	if dg == nil || dg.N < 1 || len(dg.Merges) != dg.N-1 {
		return ErrNilDendrogram
	}
	for i, m := range dg.Merges {
		if m.Left < 0 || m.Right < 0 || m.Left >= dg.N+i || m.Right >= dg.N+i {
			return ErrNilDendrogram
		}
	}

	return nil
}
