package vec

import "iter"

// Iterator walks a vector leaf block by leaf block. It is one-shot and
// finite; Next after exhaustion panics with ErrIteratorExhausted.
//
// The iterator carries a private copy of the vector's trie pointer, so
// it moves independently of the vector it came from.
type Iterator[T any] struct {
	v Vector[T]

	// blockIndex is the global index of the first element of the
	// current leaf; lo and endLo the cursor and limit within it.
	blockIndex int
	lo         int
	endLo      int

	leaf    []T
	hasNext bool
}

// Iterator returns a forward iterator over all elements.
func (v *Vector[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{v: *v}
	it.v.normalize()

	if it.v.endIndex > 0 {
		it.v.focusOn(0)
		it.leaf = it.v.display[0].values
		it.endLo = len(it.leaf)
		it.hasNext = true
	}

	return it
}

// HasNext reports whether Next will yield another element.
func (it *Iterator[T]) HasNext() bool { return it.hasNext }

// Next returns the next element.
func (it *Iterator[T]) Next() T {
	if !it.hasNext {
		panic(ErrIteratorExhausted)
	}

	x := it.leaf[it.lo]
	it.lo++
	if it.lo == it.endLo {
		it.gotoNextBlock()
	}

	return x
}

// gotoNextBlock advances the displays one leaf forward, refocusing from
// the root only when the next block leaves the focus window.
func (it *Iterator[T]) gotoNextBlock() {
	it.blockIndex += it.endLo
	if it.blockIndex >= it.v.endIndex {
		it.hasNext = false
		return
	}

	it.v.focusOn(it.blockIndex)
	it.leaf = it.v.display[0].values
	it.lo = 0
	it.endLo = len(it.leaf)
}

// ReverseIterator walks a vector backwards, leaf block by leaf block,
// under the same one-shot contract as Iterator.
type ReverseIterator[T any] struct {
	v Vector[T]

	// blockStart is the global index of the first element of the
	// current leaf; lo counts down within it.
	blockStart int
	lo         int

	leaf    []T
	hasNext bool
}

// ReverseIterator returns an iterator over all elements from last to
// first.
func (v *Vector[T]) ReverseIterator() *ReverseIterator[T] {
	it := &ReverseIterator[T]{v: *v}
	it.v.normalize()

	if it.v.endIndex > 0 {
		it.v.focusOn(it.v.endIndex - 1)
		it.leaf = it.v.display[0].values
		it.lo = len(it.leaf) - 1
		it.blockStart = it.v.focusStart + it.v.focus&^mask
		it.hasNext = true
	}

	return it
}

// HasNext reports whether Next will yield another element.
func (it *ReverseIterator[T]) HasNext() bool { return it.hasNext }

// Next returns the previous element in index order.
func (it *ReverseIterator[T]) Next() T {
	if !it.hasNext {
		panic(ErrIteratorExhausted)
	}

	x := it.leaf[it.lo]
	it.lo--
	if it.lo < 0 {
		it.gotoPrevBlock()
	}

	return x
}

func (it *ReverseIterator[T]) gotoPrevBlock() {
	if it.blockStart == 0 {
		it.hasNext = false
		return
	}

	it.v.focusOn(it.blockStart - 1)
	it.leaf = it.v.display[0].values
	it.lo = len(it.leaf) - 1
	it.blockStart = it.v.focusStart + it.v.focus&^mask
}

// Values returns an iterator over the elements, for use with range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := v.Iterator(); it.HasNext(); {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs in ascending order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for it := v.Iterator(); it.HasNext(); i++ {
			if !yield(i, it.Next()) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs in descending
// order.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := v.endIndex - 1
		for it := v.ReverseIterator(); it.HasNext(); i-- {
			if !yield(i, it.Next()) {
				return
			}
		}
	}
}

// Collect builds a vector from the elements of seq.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	var b Builder[T]
	for x := range seq {
		b.Add(x)
	}

	return b.Result()
}
