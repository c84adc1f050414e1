package vec

import "slices"

// Take returns the first n elements. A negative n yields the empty
// vector; n >= Len() yields the receiver.
func (v *Vector[T]) Take(n int) *Vector[T] {
	switch {
	case n <= 0:
		return Empty[T]()
	case n >= v.endIndex:
		return v
	}

	nv := v.clone(v.endIndex)
	nv.takeFront(n)

	return nv
}

// Drop returns the vector without its first n elements. A negative n
// yields the receiver; n >= Len() yields the empty vector.
func (v *Vector[T]) Drop(n int) *Vector[T] {
	switch {
	case n <= 0:
		return v
	case n >= v.endIndex:
		return Empty[T]()
	}

	nv := v.clone(v.endIndex)
	nv.dropFront(n)

	return nv
}

// TakeRight returns the last n elements.
func (v *Vector[T]) TakeRight(n int) *Vector[T] {
	if n <= 0 {
		return Empty[T]()
	}

	return v.Drop(v.endIndex - n)
}

// DropRight returns the vector without its last n elements.
func (v *Vector[T]) DropRight(n int) *Vector[T] {
	if n <= 0 {
		return v
	}

	return v.Take(v.endIndex - n)
}

// Slice returns the elements in [from, until). Both bounds are clamped
// to the vector.
func (v *Vector[T]) Slice(from, until int) *Vector[T] {
	return v.Take(until).Drop(from)
}

// SplitAt returns Take(n) and Drop(n) in one call.
func (v *Vector[T]) SplitAt(n int) (*Vector[T], *Vector[T]) {
	return v.Take(n), v.Drop(n)
}

// takeFront truncates in place to the first n elements: the path to the
// cut is copied with everything right of it dropped, size tables
// recomputed on the surviving spine, and empty upper levels cleaned.
func (v *Vector[T]) takeFront(n int) {
	v.normalize()
	v.focusOn(n - 1)

	joined := v.focus | v.focusRelax

	cut := &node[T]{values: slices.Clone(v.display[0].values[:(joined&mask)+1])}
	for lvl := 1; lvl < v.depth; lvl++ {
		slot := (joined >> (bits * lvl)) & mask

		children := make([]*node[T], slot+1)
		copy(children, v.display[lvl].children[:slot+1])
		children[slot] = cut

		cut = withComputedSizes(children, lvl+1)
	}

	v.cleanTop(cut, v.depth)
	v.endIndex = n
	v.gotoPosFromRoot(n - 1)
}

// dropFront removes the first n elements in place, the mirror image of
// takeFront on the left spine.
func (v *Vector[T]) dropFront(n int) {
	v.normalize()
	v.focusOn(n)

	joined := v.focus | v.focusRelax

	cut := &node[T]{values: slices.Clone(v.display[0].values[joined&mask:])}
	for lvl := 1; lvl < v.depth; lvl++ {
		slot := (joined >> (bits * lvl)) & mask

		children := slices.Clone(v.display[lvl].children[slot:])
		children[0] = cut

		cut = withComputedSizes(children, lvl+1)
	}

	v.cleanTop(cut, v.depth)
	v.endIndex -= n
	v.gotoPosFromRoot(0)
}
