package main

import (
	"github.com/apt1002/fvq-go/internal/imageio"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/spf13/cobra"
)

func newEnlargeCmd() *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "enlarge <in> [out]",
		Short: "Upsample an image by repeated inverse Haar+twiddle with no detail",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			outPath := outPathOrDefault(args, "enlarge")

			pixels, err := imageio.Load(inPath)
			if err != nil {
				return err
			}

			p := zeroDetailPyramid(order, pixels)
			out := p.ToPixels(true)

			log.Info().Str("in", inPath).Str("out", outPath).Int("order", order).Msg("wrote enlarged image")
			return imageio.Save(outPath, out)
		},
	}
	cmd.Flags().IntVarP(&order, "order", "n", 1, "number of upsampling levels")
	return cmd
}

// zeroDetailPyramid wraps pixels as a Pyramid's low plane with every
// high-frequency triplet zeroed, so ToPixels performs pure upsampling.
func zeroDetailPyramid(order int, low [][]float32) pyramid.Pyramid {
	highs := make([][][]pyramid.Triplet, order)
	h, w := len(low), len(low[0])
	for level := 0; level < order; level++ {
		levelH := h << level
		levelW := w << level
		grid := make([][]pyramid.Triplet, levelH)
		for y := range grid {
			grid[y] = make([]pyramid.Triplet, levelW)
		}
		highs[level] = grid
	}
	return pyramid.Pyramid{Low: low, Highs: highs}
}
