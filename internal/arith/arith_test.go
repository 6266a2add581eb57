package arith

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitOnMiddle(t *testing.T) {
	model := newSplitInner(uint32(scale / 8))
	i0, i1 := Middle.Split(model)
	require.Equal(t, Middle.Below, i0.Below)
	require.Equal(t, uint32(scale*5/16), i0.Above)
	require.Equal(t, uint32(scale*11/16), i1.Below)
	require.Equal(t, Middle.Above, i1.Above)
}

func roundTrip(t *testing.T, model Split, bits []bool) {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, b := range bits {
		require.NoError(t, w.Write(model, b))
	}
	_, err := w.Close()
	require.NoError(t, err)

	r := NewReader(&buf)
	for i, want := range bits {
		got, err := r.Read(model)
		require.NoErrorf(t, err, "bit %d", i)
		require.Equalf(t, want, got, "bit %d", i)
	}
}

// TestFairCoder exercises writing then reading [true, false, true, false]
// with an unbiased model.
func TestFairCoder(t *testing.T) {
	roundTrip(t, NewSplit(0.5), []bool{true, false, true, false})
}

// TestBiasedCoder exercises a heavily false-biased model: ten falses
// followed by one true.
func TestBiasedCoder(t *testing.T) {
	bits := make([]bool, 0, 11)
	for i := 0; i < 10; i++ {
		bits = append(bits, false)
	}
	bits = append(bits, true)
	roundTrip(t, NewSplitRatio(6, 1), bits)
}

func TestLongRandomStream(t *testing.T) {
	var seed uint32 = 1
	bits := make([]bool, 500)
	for i := range bits {
		seed = seed*3141592653 + 2718281845
		bits[i] = seed>>31 != 0
	}
	roundTrip(t, NewSplitRatio(3, 5), bits)
}
