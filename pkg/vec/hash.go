package vec

import "github.com/dolthub/maphash"

// Hasher hashes vectors of comparable elements. Hashes from the same
// Hasher are consistent with Equal; hashes from different Hashers use
// different seeds and must not be mixed.
type Hasher[T comparable] struct {
	h maphash.Hasher[T]
}

// NewHasher returns a Hasher with a fresh random seed.
func NewHasher[T comparable]() Hasher[T] {
	return Hasher[T]{h: maphash.NewHasher[T]()}
}

// Hash returns a content hash of v: an order-sensitive combination of
// the element hashes.
func (h Hasher[T]) Hash(v *Vector[T]) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	acc := uint64(offset64)
	for it := v.Iterator(); it.HasNext(); {
		acc = (acc ^ h.h.Hash(it.Next())) * prime64
	}

	return acc
}
