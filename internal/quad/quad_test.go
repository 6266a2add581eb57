package quad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuadAtAndTranspose(t *testing.T) {
	q := NewQuad(1, 2, 3, 4)
	require.Equal(t, 1, q.At(false, false))
	require.Equal(t, 2, q.At(false, true))
	require.Equal(t, 3, q.At(true, false))
	require.Equal(t, 4, q.At(true, true))

	qt := q.Transpose()
	require.Equal(t, 1, qt.At(false, false))
	require.Equal(t, 3, qt.At(false, true))
	require.Equal(t, 2, qt.At(true, false))
	require.Equal(t, 4, qt.At(true, true))
}

func TestQuadEachOrder(t *testing.T) {
	q := NewQuad("a", "b", "c", "d")
	var seen []string
	q.Each(func(row, col bool, v string) { seen = append(seen, v) })
	require.Equal(t, []string{"a", "b", "c", "d"}, seen)
}

func TestTreeEqual(t *testing.T) {
	eqInt := func(a, b int) bool { return a == b }
	leaf := Leaf[int]()
	require.True(t, Equal(leaf, Leaf[int](), eqInt))

	children := NewQuad(Leaf[int](), Leaf[int](), Leaf[int](), Leaf[int]())
	b1 := Branch(5, children)
	b2 := Branch(5, children)
	b3 := Branch(6, children)
	require.True(t, Equal(b1, b2, eqInt))
	require.False(t, Equal(b1, b3, eqInt))
	require.False(t, Equal(b1, leaf, eqInt))
}
