package vec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/flier/persistent/pkg/opt"
)

// Vector is a persistent indexed sequence. The zero value is not
// meaningful; use Empty, Singleton, Of, From, Collect or a Builder.
//
// All operations leave the receiver observably unchanged and return a
// new vector sharing structure with it. Reads reposition the embedded
// focus cache, so a single instance must not be shared between
// goroutines without external locking; derived instances are
// independent.
type Vector[T any] struct {
	pointer[T]

	// endIndex is the element count, immutable once the vector is
	// published.
	endIndex int
}

// Empty returns the empty vector.
func Empty[T any]() *Vector[T] { return &Vector[T]{} }

// Singleton returns a vector holding exactly one element.
func Singleton[T any](elem T) *Vector[T] {
	v := &Vector[T]{endIndex: 1}
	v.depth = 1
	v.display[0] = newLeaf([]T{elem})
	v.focusEnd = 1
	v.focusDepth = 1

	return v
}

// Of returns a vector of the given elements.
func Of[T any](elems ...T) *Vector[T] { return From(elems) }

// From returns a vector of the elements of s.
func From[T any](s []T) *Vector[T] {
	var b Builder[T]
	for _, x := range s {
		b.Add(x)
	}

	return b.Result()
}

// clone starts a derived vector: a fresh instance whose pointer is
// initialized from the source and then mutated in place.
func (v *Vector[T]) clone(endIndex int) *Vector[T] {
	nv := &Vector[T]{endIndex: endIndex}
	nv.pointer = v.pointer

	return nv
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.endIndex }

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.endIndex == 0 }

// Get returns the element at index. It panics with ErrOutOfRange when
// index is outside [0, Len()).
func (v *Vector[T]) Get(index int) T {
	if index < 0 || index >= v.endIndex {
		panic(outOfRange(index, v.endIndex))
	}

	if v.focusStart <= index && index < v.focusEnd {
		indexInFocus := index - v.focusStart

		return v.getElem(indexInFocus, indexInFocus^v.focus)
	}

	v.normalize()
	v.gotoPosFromRoot(index)

	return v.display[0].values[v.focus&mask]
}

// GetOption returns the element at index, or None when index is out of
// range.
func (v *Vector[T]) GetOption(index int) opt.Option[T] {
	if index < 0 || index >= v.endIndex {
		return opt.None[T]()
	}

	return opt.Some(v.Get(index))
}

// Updated returns a vector of the same length with the element at index
// replaced. Everything but the path to the touched leaf is shared with
// the receiver. It panics with ErrOutOfRange when index is outside
// [0, Len()).
func (v *Vector[T]) Updated(index int, elem T) *Vector[T] {
	if index < 0 || index >= v.endIndex {
		panic(outOfRange(index, v.endIndex))
	}

	nv := v.clone(v.endIndex)
	nv.focusOn(index)

	values := slices.Clone(nv.display[0].values)
	values[(index-nv.focusStart)&mask] = elem
	nv.display[0] = newLeaf(values)
	nv.makeTransientIfNeeded()

	return nv
}

// Head returns the first element. It panics with ErrEmptyVector on an
// empty vector.
func (v *Vector[T]) Head() T {
	if v.endIndex == 0 {
		panic(ErrEmptyVector)
	}

	return v.Get(0)
}

// HeadOption returns the first element, or None on an empty vector.
func (v *Vector[T]) HeadOption() opt.Option[T] { return v.GetOption(0) }

// Last returns the last element. It panics with ErrEmptyVector on an
// empty vector.
func (v *Vector[T]) Last() T {
	if v.endIndex == 0 {
		panic(ErrEmptyVector)
	}

	return v.Get(v.endIndex - 1)
}

// LastOption returns the last element, or None on an empty vector.
func (v *Vector[T]) LastOption() opt.Option[T] { return v.GetOption(v.endIndex - 1) }

// Tail returns the vector without its first element. It panics with
// ErrEmptyVector on an empty vector.
func (v *Vector[T]) Tail() *Vector[T] {
	if v.endIndex == 0 {
		panic(ErrEmptyVector)
	}

	return v.Drop(1)
}

// Init returns the vector without its last element. It panics with
// ErrEmptyVector on an empty vector.
func (v *Vector[T]) Init() *Vector[T] {
	if v.endIndex == 0 {
		panic(ErrEmptyVector)
	}

	return v.Take(v.endIndex - 1)
}

// ToSlice copies the elements into a fresh slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, 0, v.endIndex)
	for it := v.Iterator(); it.HasNext(); {
		out = append(out, it.Next())
	}

	return out
}

// String renders the vector like a Go slice literal.
func (v *Vector[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for it, first := v.Iterator(), true; it.HasNext(); first = false {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", it.Next())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Equal reports whether two vectors hold the same elements in the same
// order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison.
func EqualFunc[A, B any](a *Vector[A], b *Vector[B], eq func(A, B) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	ia, ib := a.Iterator(), b.Iterator()
	for ia.HasNext() {
		if !eq(ia.Next(), ib.Next()) {
			return false
		}
	}

	return true
}
