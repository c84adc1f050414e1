package vec

import "github.com/flier/persistent/internal/debug"

const (
	// bits is the number of index bits consumed per tree level.
	bits = 5

	// width is the branching factor: the maximum number of slots in a
	// node, and the maximum number of elements in a leaf.
	width = 1 << bits

	mask = width - 1

	// maxDepth bounds the tree height, capping capacity at 32^6
	// elements. Going beyond it is a deliberate design change, not a
	// configuration knob.
	maxDepth = 6
)

// treeSizeAt returns the element capacity of a complete subtree of the
// given depth.
func treeSizeAt(depth int) int { return 1 << (bits * depth) }

// node is one level of the trie. A depth-1 node is a leaf and keeps
// elements in values; deeper nodes keep subtrees in children. sizes,
// when non-nil, holds the cumulative element counts of the children and
// marks the node as relaxed; a nil sizes promises that every child
// except the last is a complete subtree and that the whole node is
// navigable by bit-slicing alone.
type node[T any] struct {
	values   []T
	children []*node[T]
	sizes    []int
}

func newLeaf[T any](values []T) *node[T] { return &node[T]{values: values} }

// size returns the number of elements in the subtree rooted at n.
func (n *node[T]) size(depth int) int {
	size := 0
	for depth > 1 {
		if n.sizes != nil {
			return size + n.sizes[len(n.sizes)-1]
		}
		size += (len(n.children) - 1) << (bits * (depth - 1))
		n = n.children[len(n.children)-1]
		depth--
	}
	return size + len(n.values)
}

// withComputedSizes builds an internal node from children, attaching a
// size table only when the node turns out relaxed.
func withComputedSizes[T any](children []*node[T], depth int) *node[T] {
	debug.Assert(depth >= 2, "internal node at depth %d", depth)

	n := &node[T]{children: children}
	n.recomputeSizes(depth)

	return n
}

// recomputeSizes rebuilds the size table of an internal node from its
// children, dropping the table again when every child except the last
// is complete and every child is itself navigable without one.
func (n *node[T]) recomputeSizes(depth int) {
	full := treeSizeAt(depth - 1)
	sizes := make([]int, len(n.children))

	sum := 0
	balanced := true

	for i, c := range n.children {
		sum += c.size(depth - 1)
		sizes[i] = sum

		if i < len(n.children)-1 && sizes[i] != (i+1)*full {
			balanced = false
		}
		if depth > 2 && c.sizes != nil {
			balanced = false
		}
	}

	if balanced {
		n.sizes = nil
	} else {
		n.sizes = sizes
	}
}

// indexInSizes returns the slot of the child whose subtree contains the
// given offset, the smallest slot whose prefix sum exceeds it.
func indexInSizes(sizes []int, offset int) int {
	is := 0
	for sizes[is] <= offset {
		is++
	}

	return is
}

// divergeDepth maps the XOR of two tree offsets to the depth of their
// lowest common subtree: 1 when both land in the same leaf, up to
// maxDepth. Larger magnitudes cannot occur in a well formed trie.
func divergeDepth(xor int) int {
	switch {
	case xor < 1<<(bits*1):
		return 1
	case xor < 1<<(bits*2):
		return 2
	case xor < 1<<(bits*3):
		return 3
	case xor < 1<<(bits*4):
		return 4
	case xor < 1<<(bits*5):
		return 5
	case xor < 1<<(bits*6):
		return 6
	default:
		panic("vec: corrupted trie: offset difference exceeds maximum capacity")
	}
}
