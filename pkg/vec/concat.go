package vec

import "github.com/flier/persistent/internal/debug"

// Concat returns a vector holding the receiver's elements followed by
// that's. Both operands are shared, not copied; the merge touches only
// the nodes on the facing spines, rebalancing them level by level.
func (v *Vector[T]) Concat(that *Vector[T]) *Vector[T] {
	switch {
	case that.endIndex == 0:
		return v
	case v.endIndex == 0:
		return that
	}

	if that.endIndex <= width {
		// A short right operand is cheaper to feed through the append
		// fast path than to rebalance.
		nv := v.clone(v.endIndex)
		for it := that.Iterator(); it.HasNext(); {
			nv.endIndex++
			nv.appendElem(it.Next())
		}

		return nv
	}

	v.normalize()
	that.normalize()

	root, depth := concatSubTree(v.root(), v.depth, that.root(), that.depth, true)
	debug.Assert(depth <= maxDepth, "concatenation overflowed maximum depth: %d", depth)

	nv := &Vector[T]{endIndex: v.endIndex + that.endIndex}
	nv.depth = depth
	nv.display[depth-1] = root
	nv.gotoPosFromRoot(0)

	return nv
}

// concatSubTree merges two subtrees, rebalancing the border between
// them from the leaves upward. It returns a node one level above the
// taller operand holding the merged children, except at the top, where
// the result collapses to the lowest depth that fits.
func concatSubTree[T any](left *node[T], dl int, right *node[T], dr int, top bool) (*node[T], int) {
	switch {
	case dl > dr:
		mid, _ := concatSubTree(left.children[len(left.children)-1], dl-1, right, dr, false)
		return rebalanced(left, mid, nil, dl, top)
	case dl < dr:
		mid, _ := concatSubTree(left, dl, right.children[0], dr-1, false)
		return rebalanced(nil, mid, right, dr, top)
	case dl == 1:
		return rebalancedLeafs(left.values, right.values, top)
	default:
		mid, _ := concatSubTree(left.children[len(left.children)-1], dl-1, right.children[0], dr-1, false)
		return rebalanced(left, mid, right, dl, top)
	}
}

// rebalanced reflows three child runs, the left operand's interior
// children, the merged border from one level below, and the right
// operand's interior children, into full blocks and wraps them one
// level up. Either operand may be nil when the border swallowed it.
func rebalanced[T any](left, mid, right *node[T], depth int, top bool) (*node[T], int) {
	var all []*node[T]
	if left != nil {
		all = append(all, left.children[:len(left.children)-1]...)
	}
	all = append(all, mid.children...)
	if right != nil {
		all = append(all, right.children[1:]...)
	}

	packed := reflow(all, depth-1)
	debug.Assert(len(packed) <= 2*width, "rebalancing produced %d blocks", len(packed))

	switch {
	case top && len(packed) == 1:
		return packed[0], depth - 1
	case top && len(packed) <= width:
		return withComputedSizes(packed, depth), depth
	case len(packed) <= width:
		return withComputedSizes([]*node[T]{withComputedSizes(packed, depth)}, depth+1), depth + 1
	default:
		halves := []*node[T]{
			withComputedSizes(packed[:width:width], depth),
			withComputedSizes(packed[width:], depth),
		}
		return withComputedSizes(halves, depth+1), depth + 1
	}
}

// rebalancedLeafs merges two adjacent leaves, splitting only when they
// exceed one block, the first block filled by preference.
func rebalancedLeafs[T any](left, right []T, top bool) (*node[T], int) {
	total := len(left) + len(right)

	if total <= width {
		merged := make([]T, 0, total)
		merged = append(append(merged, left...), right...)

		if top {
			return newLeaf(merged), 1
		}
		return withComputedSizes([]*node[T]{newLeaf(merged)}, 2), 2
	}

	merged := make([]T, total)
	copy(merged, left)
	copy(merged[len(left):], right)

	first := make([]T, width)
	copy(first, merged)
	rest := make([]T, total-width)
	copy(rest, merged[width:])

	return withComputedSizes([]*node[T]{newLeaf(first), newLeaf(rest)}, 2), 2
}

// reflow repacks a run of sibling subtrees so every block except the
// last is full, reusing blocks that are already full, or final, and
// aligned.
func reflow[T any](all []*node[T], depth int) []*node[T] {
	if depth == 1 {
		return reflowLeafs(all)
	}

	branching := 0
	for _, n := range all {
		branching += len(n.children)
	}

	out := make([]*node[T], 0, (branching+width-1)/width)

	var buf []*node[T]
	for i, n := range all {
		if len(buf) == 0 && (len(n.children) == width || i == len(all)-1) {
			out = append(out, n)
			continue
		}

		for _, c := range n.children {
			buf = append(buf, c)
			if len(buf) == width {
				out = append(out, withComputedSizes(buf, depth))
				buf = nil
			}
		}
	}
	if len(buf) > 0 {
		out = append(out, withComputedSizes(buf, depth))
	}

	return out
}

func reflowLeafs[T any](all []*node[T]) []*node[T] {
	branching := 0
	for _, n := range all {
		branching += len(n.values)
	}

	out := make([]*node[T], 0, (branching+width-1)/width)

	var buf []T
	for i, n := range all {
		if len(buf) == 0 && (len(n.values) == width || i == len(all)-1) {
			out = append(out, n)
			continue
		}

		for _, x := range n.values {
			buf = append(buf, x)
			if len(buf) == width {
				out = append(out, newLeaf(buf))
				buf = nil
			}
		}
	}
	if len(buf) > 0 {
		out = append(out, newLeaf(buf))
	}

	return out
}
