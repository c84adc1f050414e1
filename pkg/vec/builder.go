package vec

import (
	"iter"
	"slices"

	"github.com/flier/persistent/internal/debug"
)

// Builder accumulates elements and emits an immutable vector. The zero
// value is ready to use, and a builder can be reused after Clear.
//
// Elements are written into a private 32-slot leaf buffer; completed
// blocks cascade into per-level spines, so the finished tree is
// balanced except for its rightmost path. Whole vectors can be absorbed
// structurally with AddVector.
type Builder[T any] struct {
	leaf   []T
	levels [maxDepth - 1][]*node[T]

	// blockIndex is the global index of the first element of the
	// current leaf; lo the next free slot within it.
	blockIndex int
	lo         int

	// acc holds everything absorbed through AddVector, concatenated
	// in front of whatever the spines produce.
	acc *Vector[T]
}

// NewBuilder returns an empty builder.
func NewBuilder[T any]() *Builder[T] { return &Builder[T]{} }

// Len returns the number of elements added so far.
func (b *Builder[T]) Len() int {
	n := b.blockIndex + b.lo
	if b.acc != nil {
		n += b.acc.Len()
	}

	return n
}

// Add appends one element.
func (b *Builder[T]) Add(elem T) {
	if b.lo >= width {
		b.gotoNextBlockStartWritable()
	}
	if b.leaf == nil {
		b.leaf = make([]T, width)
	}

	b.leaf[b.lo] = elem
	b.lo++
}

// AddSlice appends every element of s.
func (b *Builder[T]) AddSlice(s []T) {
	for _, x := range s {
		b.Add(x)
	}
}

// AddSeq appends every element of seq: the fallback for sources that
// are not vectors. A vector source should go through AddVector, which
// shares its structure instead.
func (b *Builder[T]) AddSeq(seq iter.Seq[T]) {
	for x := range seq {
		b.Add(x)
	}
}

// AddVector concatenates an entire vector into the builder. The
// builder's pending state is finalized first, so the vector's nodes are
// shared rather than copied element by element; subsequent additions
// start on a fresh spine.
func (b *Builder[T]) AddVector(v *Vector[T]) {
	if v.endIndex == 0 {
		return
	}

	b.acc = b.Result().Concat(v)
	b.resetSpine()
}

// Result returns the vector of everything added so far. The builder
// stays usable: nodes handed out are never written again.
func (b *Builder[T]) Result() *Vector[T] {
	built := b.build()
	if b.acc == nil {
		return built
	}

	return b.acc.Concat(built)
}

// Clear resets the builder to empty.
func (b *Builder[T]) Clear() {
	b.acc = nil
	b.resetSpine()
}

func (b *Builder[T]) resetSpine() {
	b.levels = [maxDepth - 1][]*node[T]{}
	b.blockIndex = 0
	b.lo = 0
}

// gotoNextBlockStartWritable closes the current leaf and opens a fresh
// writable block, cascading each level that fills up into its parent
// spine.
func (b *Builder[T]) gotoNextBlockStartWritable() {
	debug.Assert(b.lo == width, "closed a leaf at %d of %d slots", b.lo, width)

	b.levels[0] = append(b.levels[0], newLeaf(slices.Clone(b.leaf[:b.lo])))

	for lvl := 0; len(b.levels[lvl]) == width; lvl++ {
		debug.Assert(lvl+1 < len(b.levels), "builder exceeded maximum capacity")

		b.levels[lvl+1] = append(b.levels[lvl+1], &node[T]{children: b.levels[lvl]})
		b.levels[lvl] = nil
	}

	b.blockIndex += width
	b.lo = 0
}

// build stabilizes the spines into a vector without recomputing size
// tables: everything the builder produces is balanced by construction,
// the rightmost path excepted, which balanced nodes tolerate.
func (b *Builder[T]) build() *Vector[T] {
	size := b.blockIndex + b.lo
	if size == 0 {
		return Empty[T]()
	}

	hi := -1
	for lvl := len(b.levels) - 1; lvl >= 0; lvl-- {
		if len(b.levels[lvl]) > 0 {
			hi = lvl
			break
		}
	}

	if hi < 0 {
		v := &Vector[T]{endIndex: size}
		v.depth = 1
		v.display[0] = newLeaf(slices.Clone(b.leaf[:b.lo]))
		v.focusEnd = size
		v.focusDepth = 1

		return v
	}

	var carry *node[T]
	if b.lo > 0 {
		carry = newLeaf(slices.Clone(b.leaf[:b.lo]))
	}

	for lvl := 0; lvl < hi; lvl++ {
		ns := slices.Clone(b.levels[lvl])
		if carry != nil {
			ns = append(ns, carry)
		}

		if len(ns) == 0 {
			carry = nil
		} else {
			carry = &node[T]{children: ns}
		}
	}

	ns := slices.Clone(b.levels[hi])
	if carry != nil {
		ns = append(ns, carry)
	}

	v := &Vector[T]{endIndex: size}
	if len(ns) == 1 {
		v.depth = hi + 1
		v.display[v.depth-1] = ns[0]
	} else {
		v.depth = hi + 2
		v.display[v.depth-1] = &node[T]{children: ns}
	}
	v.gotoPosFromRoot(0)

	return v
}
