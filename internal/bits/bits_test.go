package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVec mirrors a reference Sequence against a plain slice of bool,
// driven by the same small LCG used to generate deterministic pseudo-random
// test bits elsewhere in this codebase.
func TestVec(t *testing.T) {
	var s Sequence
	var bv []bool
	var seed uint32 = 1
	for i := 0; i < 1000; i++ {
		seed = seed*3141592653 + 2718281845
		bit := seed>>31 != 0
		s.Push(bit)
		bv = append(bv, bit)
	}

	it := s.NewIterator()
	for i := 0; i < 1000; i++ {
		got, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, bv[i], got)
	}
	_, ok := it.Next()
	require.False(t, ok)

	for i := 999; i >= 0; i-- {
		got, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, bv[i], got)
	}
	_, ok = s.Pop()
	require.False(t, ok)
}

func TestLen(t *testing.T) {
	var s Sequence
	require.Equal(t, 0, s.Len())
	for i := 0; i < 130; i++ {
		s.Push(i%2 == 0)
	}
	require.Equal(t, 130, s.Len())
}
