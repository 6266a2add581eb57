// Package quad provides the 2x2 tile container and recursive quadtree used
// throughout the wavelet pyramid: a Quad holds exactly four same-type
// values indexed by a (row, col) boolean pair, and a Tree[B] is either a
// blank Leaf or a Branch carrying a payload of type B plus four child
// subtrees.
package quad

// Quad is a 2x2 grid of T, indexed by (row, col) booleans.
type Quad[T any] struct {
	cells [2][2]T
}

// NewQuad builds a Quad from its four cells in row-major order:
// (false,false), (false,true), (true,false), (true,true).
func NewQuad[T any](a, b, c, d T) Quad[T] {
	return Quad[T]{cells: [2][2]T{{a, b}, {c, d}}}
}

// At returns the cell at (row, col).
func (q Quad[T]) At(row, col bool) T {
	return q.cells[boolIndex(row)][boolIndex(col)]
}

// Set returns a copy of q with the cell at (row, col) replaced.
func (q Quad[T]) Set(row, col bool, v T) Quad[T] {
	q.cells[boolIndex(row)][boolIndex(col)] = v
	return q
}

// Transpose exchanges the row and column indices.
func (q Quad[T]) Transpose() Quad[T] {
	return NewQuad(q.At(false, false), q.At(true, false), q.At(false, true), q.At(true, true))
}

// Each calls f once per cell, in (false,false), (false,true), (true,false),
// (true,true) order.
func (q Quad[T]) Each(f func(row, col bool, v T)) {
	f(false, false, q.cells[0][0])
	f(false, true, q.cells[0][1])
	f(true, false, q.cells[1][0])
	f(true, true, q.cells[1][1])
}

// MapQuad applies f to every cell of q, producing a Quad of a possibly
// different element type.
func MapQuad[T, U any](q Quad[T], f func(T) U) Quad[U] {
	return NewQuad(f(q.At(false, false)), f(q.At(false, true)), f(q.At(true, false)), f(q.At(true, true)))
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Tree is a recursive quadtree over payloads of type B. A Leaf represents a
// tile that is everywhere equal to its mean (blank); a Branch carries the
// payload for this level plus four child subtrees, each covering one
// quadrant at half the linear size.
type Tree[B any] struct {
	branch *branch[B]
}

type branch[B any] struct {
	payload  B
	children Quad[Tree[B]]
}

// Leaf returns the blank Tree.
func Leaf[B any]() Tree[B] {
	return Tree[B]{}
}

// Branch constructs a non-blank Tree.
func Branch[B any](payload B, children Quad[Tree[B]]) Tree[B] {
	return Tree[B]{branch: &branch[B]{payload: payload, children: children}}
}

// IsLeaf reports whether t is the blank tree.
func (t Tree[B]) IsLeaf() bool { return t.branch == nil }

// Payload returns the payload of a Branch. It panics on a Leaf.
func (t Tree[B]) Payload() B {
	if t.branch == nil {
		panic("quad: Payload called on a Leaf")
	}
	return t.branch.payload
}

// Children returns the child subtrees of a Branch. It panics on a Leaf.
func (t Tree[B]) Children() Quad[Tree[B]] {
	if t.branch == nil {
		panic("quad: Children called on a Leaf")
	}
	return t.branch.children
}

// Equal reports whether s and t have the same shape and, at every Branch,
// equal payloads (per eq).
func Equal[B any](s, t Tree[B], eq func(a, b B) bool) bool {
	if s.IsLeaf() != t.IsLeaf() {
		return false
	}
	if s.IsLeaf() {
		return true
	}
	if !eq(s.Payload(), t.Payload()) {
		return false
	}
	sc, tc := s.Children(), t.Children()
	ok := true
	sc.Each(func(row, col bool, sv Tree[B]) {
		ok = ok && Equal(sv, tc.At(row, col), eq)
	})
	return ok
}
