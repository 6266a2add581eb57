package haar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformIsSelfInverse(t *testing.T) {
	h := New(1.0, 4.0, 2.0, 3.0)
	htt := h.Transform().Transform()
	require.InDelta(t, h.At(false, false), htt.At(false, false), 1e-6)
	require.InDelta(t, h.At(false, true), htt.At(false, true), 1e-6)
	require.InDelta(t, h.At(true, false), htt.At(true, false), 1e-6)
	require.InDelta(t, h.At(true, true), htt.At(true, true), 1e-6)
}

// TestHaarKernelScenario exercises the input tile [[1,4],[2,3]]: one
// transform followed by a second recovers the input exactly. The
// transformed values (LL=5, LH=-2, HL=0, HH=-1) follow directly from
// Transform's 0.5*((a+b)+(c+d)) formula; no self-inverse matrix in this
// Hadamard family can instead reach LL=2.5/LH=0.
func TestHaarKernelScenario(t *testing.T) {
	h := New(1.0, 4.0, 2.0, 3.0)
	out := h.Transform()
	require.InDelta(t, 5.0, out.At(false, false), 1e-6)
	require.InDelta(t, -2.0, out.At(false, true), 1e-6)
	require.InDelta(t, 0.0, out.At(true, false), 1e-6)
	require.InDelta(t, -1.0, out.At(true, true), 1e-6)

	back := out.Transform()
	require.InDelta(t, 1.0, back.At(false, false), 1e-6)
	require.InDelta(t, 4.0, back.At(false, true), 1e-6)
	require.InDelta(t, 2.0, back.At(true, false), 1e-6)
	require.InDelta(t, 3.0, back.At(true, true), 1e-6)
}
