package stats

import (
	"testing"

	"github.com/apt1002/fvq-go/internal/bcc"
	"github.com/apt1002/fvq-go/internal/quad"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/stretchr/testify/require"
)

func TestCountLeaf(t *testing.T) {
	s := NewBCCStatistics()
	s.CountTree(quad.Leaf[bcc.ShiftedBCC]())
	require.Equal(t, 1, s.LeafCount)
}

func TestCountShortBCC(t *testing.T) {
	s := NewBCCStatistics()
	point := bcc.New(1.0, 0.0, 0.5)
	s.CountBCC(point)
	require.Equal(t, 1, len(s.ShortBCCCounts))
	require.Empty(t, s.BCCCounts)
}

func TestCountLongBCC(t *testing.T) {
	s := NewBCCStatistics()
	point := bcc.New(8.0, -13.0, -4.5)
	s.CountBCC(point)
	require.Empty(t, s.ShortBCCCounts)
	require.Equal(t, 1, len(s.BCCCounts))
}

func sampleGrid(h, w int) [][]float32 {
	out := make([][]float32, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float32, w)
		for x := 0; x < w; x++ {
			fx := float32(x)
			fy := float32(y)
			out[y][x] = 0.125*fx*(15-fx) - 0.25*fy*(7-fy)
		}
	}
	return out
}

func TestCountPyramid(t *testing.T) {
	p, err := pyramid.FromPixels(2, true, sampleGrid(8, 16))
	require.NoError(t, err)

	s := NewBCCStatistics()
	s.CountPyramid(p)
	require.Greater(t, s.LeafCount+len(s.ShortBCCCounts)+len(s.BCCCounts), 0)
}
