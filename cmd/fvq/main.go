// Command fvq processes images through the wavelet/BCC-lattice codec core.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "fvq",
		Short: "Experimental lossy wavelet image codec",
	}
	root.AddCommand(
		newWaveletCmd(),
		newEnlargeCmd(),
		newQuantizeCmd(),
		newBCCStatsCmd(),
	)
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("fvq failed")
	}
}
