package bcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var nearestFour = [4][3]float32{
	{0.0, -1.0, -0.5},
	{0.0, 1.0, -0.5},
	{-1.0, 0.0, 0.5},
	{1.0, 0.0, 0.5},
}

func TestNewVHCRoundTrip(t *testing.T) {
	for _, p := range nearestFour {
		bcc := New(p[0], p[1], p[2])
		v, h, c := bcc.VHC()
		require.Equal(t, p[0], v)
		require.Equal(t, p[1], h)
		require.Equal(t, p[2], c)
	}
}

func TestArrowContract(t *testing.T) {
	check := func(a ShiftedBCC) {
		observedB, observedR := a.Arrow()
		expectedB, errNorm := Quantize(0.5*a.V(), 0.5*a.H(), 0.5*a.C())
		require.LessOrEqualf(t, errNorm, float32(1.25), "arrow for %+v", a)
		require.Equal(t, expectedB, observedB)

		ev := 0.5*a.V() - expectedB.V()
		eh := 0.5*a.H() - expectedB.H()
		ec := 0.5*a.C() - expectedB.C()
		ov, oh, oc := observedR.VHC()
		require.InDelta(t, ev, ov, 1e-6)
		require.InDelta(t, eh, oh, 1e-6)
		require.InDelta(t, ec, oc, 1e-6)
	}
	for _, v := range []float32{-2.0, 0.0, 2.0} {
		for _, h := range []float32{-2.0, 0.0, 2.0} {
			for _, c := range []float32{-2.0, 0.0, 2.0} {
				check(New(v+1.0, h, c+0.5))
				check(New(v, h-1.0, c-0.5))
			}
		}
	}
}

func TestShortChain(t *testing.T) {
	for _, p := range nearestFour {
		bcc := New(p[0], p[1], p[2])
		chain := ChainFromPoint(bcc)
		require.Empty(t, chain.Residuals)
		v, h, c := chain.ToPoint()
		require.InDelta(t, p[0], v, 1e-6)
		require.InDelta(t, p[1], h, 1e-6)
		require.InDelta(t, p[2], c, 1e-6)

		half, residual := bcc.Arrow()
		require.Equal(t, bcc, half)
		require.Equal(t, residual, chain.Terminal)
	}
}

func TestLongChain(t *testing.T) {
	bcc := New(8.0, -13.0, -4.5)
	chain := ChainFromPoint(bcc)
	require.Len(t, chain.Residuals, 4)
	require.Equal(t, bcc, chain.ToBCC())
}

func TestSymmetryIsSelfInverse(t *testing.T) {
	for _, s := range AllSymmetries {
		for _, r := range AllResiduals {
			require.Equal(t, r, s.ApplyResidual(s.ApplyResidual(r)))
		}
	}
}

func TestRecommendedSymmetryCanonicalizes(t *testing.T) {
	for _, r := range AllResiduals {
		s := RecommendedSymmetry(r)
		canonical := s.ApplyResidual(r)
		require.True(t, canonical == 0 || canonical == 4)
	}
}

func TestChainCanonicalizeTerminalAndLength(t *testing.T) {
	bcc := New(8.0, -13.0, -4.5)
	chain := ChainFromPoint(bcc)
	canon := chain.Canonicalize()
	require.True(t, canon.Terminal == 0 || canon.Terminal == 4)
	require.Len(t, canon.Residuals, len(chain.Residuals))
}
