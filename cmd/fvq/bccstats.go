package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/apt1002/fvq-go/internal/bcc"
	"github.com/apt1002/fvq-go/internal/imageio"
	"github.com/apt1002/fvq-go/internal/pyramid"
	"github.com/apt1002/fvq-go/internal/stats"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// canonicalTerminals are the canonical residual values of the two symmetry
// orbits. Every Chain terminal lies in the {2,3,4,5} orbit and so
// canonicalizes to 4; the row for 0 always prints zero counts.
var canonicalTerminals = [2]bcc.Residual{0, 4}

func newBCCStatsCmd() *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "bcc-stats <list-file>",
		Short: "Collect chain-length statistics over a corpus of images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			runLog := log.With().Str("run_id", runID.String()).Logger()

			paths, err := readLines(args[0])
			if err != nil {
				return err
			}
			runLog.Info().Int("image_count", len(paths)).Msg("collecting statistics")

			statistics := stats.NewBCCStatistics()
			for _, path := range paths {
				pixels, err := imageio.Load(path)
				if err != nil {
					return fmt.Errorf("bcc-stats: %s: %w", path, err)
				}
				pixels = imageio.CropToMultiple(runLog, pixels, 1<<order)

				p, err := pyramid.FromPixels(order, true, pixels)
				if err != nil {
					return fmt.Errorf("bcc-stats: %s: %w", path, err)
				}
				statistics.CountPyramid(p)
				runLog.Debug().Str("path", path).Msg("counted image")
			}

			printStatistics(statistics)
			return nil
		},
	}
	cmd.Flags().IntVarP(&order, "order", "n", 5, "number of wavelet levels")
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func printStatistics(s *stats.BCCStatistics) {
	fmt.Printf("leaf_count = %d\n", s.LeafCount)
	for _, terminal := range canonicalTerminals {
		fmt.Println()
		fmt.Printf("short_bcc_counts[%d] = %d\n", terminal, s.ShortBCCCounts[terminal])
		for _, last := range bcc.AllResiduals {
			fmt.Println()
			fmt.Printf("Last %d\n", last)
			for _, first := range bcc.AllResiduals {
				fmt.Printf("First %d:", first)
				for length := 1; length < 15; length++ {
					summary := stats.BCCSummary{Terminal: terminal, Length: uint8(length), First: first, Last: last}
					fmt.Printf(" %8d", s.BCCCounts[summary])
				}
				fmt.Println()
			}
		}
	}
}
