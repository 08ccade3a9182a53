package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caio/go-maxxor"
)

var (
	checkRounds int
	checkMaxLen int
	checkSeed   int64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Stress test the trie algorithm against brute force",
	Long: `Generates random sequences and compares the trie based result with
the O(n²) brute force over every subrange. Stops at the first mismatch.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkRounds, "rounds", 1000, "Number of random sequences")
	checkCmd.Flags().IntVar(&checkMaxLen, "max-n", 12, "Maximum sequence length")
	checkCmd.Flags().Int64Var(&checkSeed, "seed", 0, "Random seed (0 picks one from the clock)")
}

// Mismatch describes an input on which the two algorithms disagree.
type Mismatch struct {
	Values []int64
	Fast   maxxor.Result
	Naive  maxxor.Result
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("mismatch on %v: trie gave %d, brute force gave %d", m.Values, m.Fast.Value, m.Naive.Value)
}

func runCheck(cmd *cobra.Command, args []string) error {
	seed := checkSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting stress test",
		zap.Int("rounds", checkRounds),
		zap.Int("max_n", checkMaxLen),
		zap.Uint("width", width),
		zap.Int64("seed", seed),
	)

	if err := stress(maxxor.NewUniformRNG(seed), checkRounds, checkMaxLen, width); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "OK %d rounds\n", checkRounds)
	return err
}

func stress(r maxxor.RNG, rounds, maxLen int, width uint) error {
	if maxLen < 1 {
		return errors.Errorf("max-n must be at least 1, got %d", maxLen)
	}
	if width < 1 || width > 64 {
		return errors.Wrapf(maxxor.ErrInvalidWidth, "got %d", width)
	}

	for round := 0; round < rounds; round++ {
		n := int(r.Int64n(int64(maxLen))) + 1
		values := maxxor.RandomSequence(r, n, width)

		fast, err := maxxor.Compute(values, maxxor.Width(width))
		if err != nil {
			return errors.Wrapf(err, "round %d", round)
		}
		naive, err := maxxor.Naive(values)
		if err != nil {
			return errors.Wrapf(err, "round %d", round)
		}

		if fast.Value != naive.Value {
			return &Mismatch{Values: values, Fast: fast, Naive: naive}
		}
		logger.Debug("Round passed", zap.Int("round", round), zap.Int64("value", fast.Value))
	}
	return nil
}
