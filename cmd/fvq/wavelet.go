package main

import (
	"github.com/apt1002/fvq-go/internal/imageio"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/spf13/cobra"
)

func newWaveletCmd() *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "wavelet <in> [out]",
		Short: "Build a wavelet pyramid and render it as a montage",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			outPath := outPathOrDefault(args, "wavelet")

			pixels, err := imageio.Load(inPath)
			if err != nil {
				return err
			}
			pixels = imageio.CropToMultiple(log, pixels, 1<<order)

			p, err := pyramid.FromPixels(order, true, pixels)
			if err != nil {
				return err
			}

			log.Info().Str("in", inPath).Str("out", outPath).Int("order", order).Msg("wrote wavelet montage")
			return imageio.Save(outPath, p.Montage())
		},
	}
	cmd.Flags().IntVarP(&order, "order", "n", 5, "number of wavelet levels")
	return cmd
}
