package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caio/go-maxxor"
	"github.com/caio/go-maxxor/internal/seqio"
)

var (
	genLength int
	genSeed   int64
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Write a random input sequence",
	Long: `Writes a random sequence in the input format: its length on the first
line, then the values. Values fit in --width bits; with the default width
of 64 negative values are produced too.

Example:
  maxxor gen --n 100000 --width 30 --seed 42 > input.txt`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&genLength, "n", 10, "Sequence length")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 picks one from the clock)")
}

func runGen(cmd *cobra.Command, args []string) error {
	if genLength < 0 {
		return errors.Errorf("length must not be negative, got %d", genLength)
	}
	if width < 1 || width > 64 {
		return errors.Wrapf(maxxor.ErrInvalidWidth, "got %d", width)
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Generating sequence",
		zap.Int("n", genLength),
		zap.Uint("width", width),
		zap.Int64("seed", seed),
	)

	values := maxxor.RandomSequence(maxxor.NewUniformRNG(seed), genLength, width)
	return seqio.WriteSequence(cmd.OutOrStdout(), values)
}
