package vec

import (
	"slices"

	"github.com/flier/persistent/internal/debug"
)

// pointer is the mutable scratch space embedded in every vector and
// iterator: a cached path from the root down to the leaf holding the
// focus index, plus the descriptor locating that leaf in the tree.
//
// display[i] holds the path node at depth i+1, so display[0] is the
// focused leaf and display[depth-1] the root. The focus window is a
// balanced subtree on the cached path (gotoPosFromRoot picks the highest
// one; a non-fast append may narrow it to the fresh leaf); inside it
// navigation is pure bit-slicing, with no size table lookups.
type pointer[T any] struct {
	depth   int
	display [maxDepth]*node[T]

	// focus is the window-local offset of the last access.
	focus int
	// focusStart and focusEnd delimit the window in global indices.
	focusStart int
	focusEnd   int
	// focusDepth is the depth of the window root.
	focusDepth int
	// focusRelax packs the slots chosen at the relaxed ancestors above
	// the window, aligned the same way focus packs slots below it.
	focusRelax int

	// transient marks the focused branch as detached: the displays on
	// the focus path are private copies whose link to the level below
	// is a nil hole, so the leaf can be swapped out without copying the
	// path again. Transient nodes are never mutated, not even by their
	// owner; normalize splices into fresh copies.
	transient bool
}

func (p *pointer[T]) root() *node[T] { return p.display[p.depth-1] }

// gotoPos repositions the displays below the divergence level onto the
// path of the given window-local offset. xor is the offset XORed with
// the current focus.
func (p *pointer[T]) gotoPos(index, xor int) {
	d := divergeDepth(xor)
	debug.Assert(d <= p.focusDepth, "divergence depth %d outside window of depth %d", d, p.focusDepth)

	for lvl := d - 1; lvl >= 1; lvl-- {
		p.display[lvl-1] = p.display[lvl].children[(index>>(bits*lvl))&mask]
	}
}

// getElem reads the element at the window-local offset, descending only
// as far as the divergence from the cached path requires. The displays
// are left untouched.
func (p *pointer[T]) getElem(index, xor int) T {
	d := divergeDepth(xor)
	debug.Assert(d <= p.focusDepth, "divergence depth %d outside window of depth %d", d, p.focusDepth)

	n := p.display[d-1]
	for lvl := d - 1; lvl >= 1; lvl-- {
		n = n.children[(index>>(bits*lvl))&mask]
	}

	return n.values[index&mask]
}

// normalize reverses the transient state: every display on the focus
// path is copied, the level below spliced into the copy, and the size
// tables recomputed where the splice may have changed subtree sizes.
// Shared nodes, holes included, are left untouched.
func (p *pointer[T]) normalize() {
	if !p.transient {
		return
	}

	joined := p.focus | p.focusRelax

	child := p.display[0]
	for lvl := 1; lvl < p.depth; lvl++ {
		parent := &node[T]{children: slices.Clone(p.display[lvl].children)}
		parent.children[(joined>>(bits*lvl))&mask] = child
		parent.recomputeSizes(lvl + 1)

		p.display[lvl] = parent
		child = parent
	}

	p.transient = false
}

// makeTransientIfNeeded detaches the focused branch: each display above
// the leaf is copied with the slot leading to the level below nulled
// out, so the leaf can be replaced without touching nodes shared with
// other versions.
func (p *pointer[T]) makeTransientIfNeeded() {
	if p.depth <= 1 || p.transient {
		return
	}

	joined := p.focus | p.focusRelax

	for lvl := 1; lvl < p.depth; lvl++ {
		parent := &node[T]{children: slices.Clone(p.display[lvl].children), sizes: p.display[lvl].sizes}
		parent.children[(joined>>(bits*lvl))&mask] = nil

		p.display[lvl] = parent
	}

	p.transient = true
}

// focusOn ensures the displays cache the path to the given global
// index. A move inside the current leaf is free; a move inside the
// window repositions the lower displays; anything else renavigates from
// the root. A transient branch is reattached before the displays leave
// its leaf.
func (v *Vector[T]) focusOn(index int) {
	if v.focusStart <= index && index < v.focusEnd {
		indexInFocus := index - v.focusStart

		if xor := indexInFocus ^ v.focus; xor >= width {
			v.normalize()
			v.gotoPos(indexInFocus, xor)
		}
		v.focus = indexInFocus
	} else {
		v.normalize()
		v.gotoPosFromRoot(index)
	}
}

// gotoPosFromRoot rebuilds the displays from the root, descending
// through size tables until a balanced subtree is reached, then
// bit-slicing the rest of the way down. All focus fields are reset to
// the window found.
func (v *Vector[T]) gotoPosFromRoot(index int) {
	start, end := 0, v.endIndex
	depth := v.depth
	relax := 0

	n := v.root()
	for depth > 1 && n.sizes != nil {
		is := indexInSizes(n.sizes, index-start)

		end = start + n.sizes[is]
		if is > 0 {
			start += n.sizes[is-1]
		}
		relax |= is << (bits * (depth - 1))

		n = n.children[is]
		depth--
		v.display[depth-1] = n
	}

	v.focusDepth = depth
	v.focusStart = start
	v.focusEnd = end
	v.focusRelax = relax
	v.focus = index - start

	for lvl := depth - 1; lvl >= 1; lvl-- {
		v.display[lvl-1] = v.display[lvl].children[(v.focus>>(bits*lvl))&mask]
	}
}

// cleanTop installs a truncated root, collapsing levels left with a
// single child and clearing the displays above the remaining depth.
func (v *Vector[T]) cleanTop(root *node[T], depth int) {
	for depth > 1 && len(root.children) == 1 {
		root = root.children[0]
		depth--
	}

	v.depth = depth
	v.display[depth-1] = root
	for lvl := depth; lvl < maxDepth; lvl++ {
		v.display[lvl] = nil
	}
}
