package twiddle

import (
	"testing"

	"github.com/apt1002/fvq-go/internal/haar"
	"github.com/stretchr/testify/require"
)

func TestTwiddleRoundTrip(t *testing.T) {
	hs := []haar.Haar{
		haar.New(1.25, 1.0, 2.5, 5.75),
		haar.New(9.25, 3.0, 4.5, 4.75),
		haar.New(25.25, 5.0, 8.5, 1.75),
	}
	old := append([]haar.Haar(nil), hs...)

	Twiddle(hs, false)
	Twiddle(hs, true)

	for i := range hs {
		for _, b := range [2]bool{false, true} {
			for _, c := range [2]bool{false, true} {
				require.InDelta(t, old[i].At(b, c), hs[i].At(b, c), 1e-5)
			}
		}
	}
}

func TestGridRoundTrip(t *testing.T) {
	grid := make([][]haar.Haar, 4)
	v := float32(0)
	for y := range grid {
		grid[y] = make([]haar.Haar, 4)
		for x := range grid[y] {
			grid[y][x] = haar.New(v, v+1, v+2, v+3)
			v += 4
		}
	}
	old := make([][]haar.Haar, len(grid))
	for y := range grid {
		old[y] = append([]haar.Haar(nil), grid[y]...)
	}

	forward := Grid(grid, false)
	back := Grid(forward, true)

	for y := range back {
		for x := range back[y] {
			for _, b := range [2]bool{false, true} {
				for _, c := range [2]bool{false, true} {
					require.InDelta(t, old[y][x].At(b, c), back[y][x].At(b, c), 1e-4)
				}
			}
		}
	}
}
