package main

import (
	"github.com/apt1002/fvq-go/internal/imageio"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/apt1002/fvq-go/internal/quantize"
	"github.com/spf13/cobra"
)

func newQuantizeCmd() *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "quantize <in> [out]",
		Short: "Round-trip an image through the digital BCC quantizer to preview lossy artifacts",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			outPath := outPathOrDefault(args, "quantize")

			pixels, err := imageio.Load(inPath)
			if err != nil {
				return err
			}
			pixels = imageio.CropToMultiple(log, pixels, 1<<order)

			p, err := pyramid.FromPixels(order, true, pixels)
			if err != nil {
				return err
			}

			h, w := p.Size()
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					pos := pyramid.Position{Level: 0, Y: y, X: x}
					low := p.Low[y][x]
					tree := p.Get(pos)
					digital := quantize.ToDigital(p.Order(), low, tree)
					p.Set(pos, quantize.FromDigital(p.Order(), low, digital))
				}
			}

			log.Info().Str("in", inPath).Str("out", outPath).Int("order", order).Msg("wrote quantized image")
			return imageio.Save(outPath, p.ToPixels(true))
		},
	}
	cmd.Flags().IntVarP(&order, "order", "n", 5, "number of wavelet levels")
	return cmd
}
