package vec

import (
	"slices"

	"github.com/flier/persistent/internal/debug"
)

// Append returns a vector of length Len()+1 with elem at the end.
// Chained appends amortize to constant time: the fresh vector keeps its
// right spine detached (transient) so only the last leaf is copied per
// step.
func (v *Vector[T]) Append(elem T) *Vector[T] {
	if v.endIndex == 0 {
		return Singleton(elem)
	}

	nv := v.clone(v.endIndex + 1)
	nv.appendElem(elem)

	return nv
}

// Prepend returns a vector of length Len()+1 with elem at the front.
func (v *Vector[T]) Prepend(elem T) *Vector[T] {
	if v.endIndex == 0 {
		return Singleton(elem)
	}

	nv := v.clone(v.endIndex + 1)
	nv.prependElem(elem)

	return nv
}

// appendElem appends in place. The receiver must be an unpublished
// clone whose endIndex already counts the new element.
func (v *Vector[T]) appendElem(elem T) {
	newIndex := v.endIndex - 1
	v.focusOnLastBlock(newIndex - 1)

	if elemIndexInBlock := (newIndex - v.focusStart) & mask; elemIndexInBlock != 0 {
		v.appendOnCurrentBlock(elem, elemIndexInBlock)
	} else {
		v.appendBackNewBlock(elem, newIndex)
	}
}

// prependElem prepends in place under the same contract as appendElem.
func (v *Vector[T]) prependElem(elem T) {
	v.focusOnFirstBlock()

	if len(v.display[0].values) < width {
		v.prependOnCurrentBlock(elem)
	} else {
		v.prependFrontNewBlock(elem)
	}
}

// focusOnLastBlock puts the focus on the leaf holding lastIndex, the
// current last element.
func (v *Vector[T]) focusOnLastBlock(lastIndex int) {
	if lastIndex < v.focusStart || lastIndex >= v.focusEnd ||
		(lastIndex-v.focusStart)^v.focus >= width {
		v.normalize()
		v.gotoPosFromRoot(lastIndex)
	}
}

// focusOnFirstBlock puts the focus on the leftmost leaf.
func (v *Vector[T]) focusOnFirstBlock() {
	if v.focusStart != 0 || v.focus&^mask != 0 {
		v.normalize()
		v.gotoPosFromRoot(0)
	}
}

// appendOnCurrentBlock grows the focused leaf by one slot. The fast
// path of Append: once the vector is transient no node above the leaf
// is copied; the first step off a non-transient vector copies the path
// once to detach it.
func (v *Vector[T]) appendOnCurrentBlock(elem T, elemIndexInBlock int) {
	debug.Assert(len(v.display[0].values) == elemIndexInBlock,
		"append slot %d does not extend leaf of %d", elemIndexInBlock, len(v.display[0].values))

	values := make([]T, elemIndexInBlock+1)
	copy(values, v.display[0].values)
	values[elemIndexInBlock] = elem

	v.display[0] = newLeaf(values)
	v.focusEnd = v.endIndex
	v.focus = v.endIndex - 1 - v.focusStart
	v.makeTransientIfNeeded()
}

// prependOnCurrentBlock shifts the focused leaf right by one slot and
// writes elem at the front.
func (v *Vector[T]) prependOnCurrentBlock(elem T) {
	old := v.display[0].values
	values := make([]T, len(old)+1)
	values[0] = elem
	copy(values[1:], old)

	v.display[0] = newLeaf(values)
	v.focusEnd++
	v.focus = 0
	v.makeTransientIfNeeded()
}

// appendBackNewBlock installs a fresh one-element leaf after the
// current, full, last leaf. The carry in the packed path index decides
// the level that gains a branch; the spine up to it is detached so the
// next 31 appends stay on the fast path.
func (v *Vector[T]) appendBackNewBlock(elem T, newIndex int) {
	newRelaxed := newIndex - v.focusStart + v.focusRelax
	branchLvl := divergeDepth(newRelaxed ^ (v.focus | v.focusRelax))
	balanced := v.focusDepth == v.depth

	debug.Log(nil, "appendBackNewBlock", "index %d branches at level %d of depth %d", newIndex, branchLvl, v.depth)

	v.normalize()

	if branchLvl <= v.depth {
		// Extend the spine node at the branch level by one slot, the
		// new hole, and detach every copied level above it.
		parent := v.display[branchLvl-1]
		grown := &node[T]{children: make([]*node[T], len(parent.children)+1)}
		copy(grown.children, parent.children)
		if parent.sizes != nil {
			grown.sizes = append(slices.Clone(parent.sizes), parent.sizes[len(parent.sizes)-1])
		}
		v.display[branchLvl-1] = grown

		for lvl := branchLvl; lvl < v.depth; lvl++ {
			above := &node[T]{children: slices.Clone(v.display[lvl].children), sizes: v.display[lvl].sizes}
			above.children[(newRelaxed>>(bits*lvl))&mask] = nil
			v.display[lvl] = above
		}

		for lvl := branchLvl - 2; lvl >= 1; lvl-- {
			v.display[lvl] = &node[T]{children: make([]*node[T], 1)}
		}
	} else {
		// The root is saturated: grow the tree by one level, the old
		// root as first child and the new branch as the hole.
		debug.Assert(branchLvl == v.depth+1, "append carry skipped to level %d above depth %d", branchLvl, v.depth)

		v.display[v.depth] = &node[T]{children: []*node[T]{v.root(), nil}}
		for lvl := v.depth - 1; lvl >= 1; lvl-- {
			v.display[lvl] = &node[T]{children: make([]*node[T], 1)}
		}
		v.depth++
	}

	v.display[0] = newLeaf([]T{elem})

	if balanced && v.focusRelax == 0 {
		// No relaxed ancestor anywhere: the grown tree stays
		// bit-navigable, so the window can keep covering all of it.
		v.focusStart = 0
		v.focusEnd = v.endIndex
		v.focusDepth = v.depth
		v.focus = newIndex
		v.focusRelax = 0
	} else {
		v.focusStart = newIndex
		v.focusEnd = v.endIndex
		v.focusDepth = 1
		v.focus = 0
		v.focusRelax = newRelaxed &^ mask
	}

	v.transient = true
}

// prependFrontNewBlock installs a fresh one-element leaf before the
// current, full, first leaf, inserting a slot at index 0 of the lowest
// left-spine node with room. The leading block is now smaller than a
// full leaf, so every ancestor on the left spine turns relaxed once the
// branch is reattached.
func (v *Vector[T]) prependFrontNewBlock(elem T) {
	v.normalize()

	insertLvl := -1
	for lvl := 1; lvl < v.depth; lvl++ {
		if len(v.display[lvl].children) < width {
			insertLvl = lvl
			break
		}
	}

	if insertLvl < 0 {
		// Every left-spine node is saturated: grow the tree by one
		// level, the new branch as the hole at slot 0.
		v.display[v.depth] = &node[T]{children: []*node[T]{nil, v.root()}}
		for lvl := v.depth - 1; lvl >= 1; lvl-- {
			v.display[lvl] = &node[T]{children: make([]*node[T], 1)}
		}
		v.depth++
	} else {
		parent := v.display[insertLvl]
		grown := &node[T]{children: make([]*node[T], len(parent.children)+1)}
		copy(grown.children[1:], parent.children)
		if parent.sizes != nil {
			sizes := make([]int, len(parent.sizes)+1)
			copy(sizes[1:], parent.sizes)
			grown.sizes = sizes
		}
		v.display[insertLvl] = grown

		for lvl := insertLvl + 1; lvl < v.depth; lvl++ {
			above := &node[T]{children: slices.Clone(v.display[lvl].children), sizes: v.display[lvl].sizes}
			above.children[0] = nil
			v.display[lvl] = above
		}

		for lvl := insertLvl - 1; lvl >= 1; lvl-- {
			v.display[lvl] = &node[T]{children: make([]*node[T], 1)}
		}
	}

	v.display[0] = newLeaf([]T{elem})

	v.focusStart = 0
	v.focusEnd = 1
	v.focusDepth = 1
	v.focus = 0
	v.focusRelax = 0
	v.transient = true
}
