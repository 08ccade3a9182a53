package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caio/go-maxxor"
	"github.com/caio/go-maxxor/internal/seqio"
)

const (
	localInput  = "input.txt"
	localOutput = "output.txt"
	judgeEnv    = "ONLINE_JUDGE"
)

var (
	// Global flags
	verbose bool
	width   uint

	// Root flags
	inputPath  string
	outputPath string
	local      bool
	multi      bool
	span       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "maxxor",
	Short: "Maximum xor over the contiguous subranges of a sequence",
	Long: `Reads a length n followed by n integers and prints the maximum value
obtainable as the bitwise xor of a contiguous, non-empty run of them.

An empty sequence (n = 0) prints 0.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().UintVar(&width, "width", 64, "Bits per value; below 64 only values in [0, 2^width) are accepted")

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "Input file (- for stdin)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file (- for stdout)")
	rootCmd.Flags().BoolVar(&local, "local", false, "Use "+localInput+" and "+localOutput+" unless "+judgeEnv+" is set")
	rootCmd.Flags().BoolVar(&multi, "cases", false, "Input starts with the number of test cases")
	rootCmd.Flags().BoolVar(&span, "span", false, "Also print the 0-based bounds of a maximising subrange")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("maxxor failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// resolvePaths applies the --local convenience.
func resolvePaths() (in, out string) {
	in, out = inputPath, outputPath
	if local {
		if _, judged := os.LookupEnv(judgeEnv); judged {
			logger.Debug("Running under a judge, ignoring --local")
			return in, out
		}
		in, out = localInput, localOutput
	}
	return in, out
}

func runSolve(cmd *cobra.Command, args []string) (err error) {
	in, out := resolvePaths()

	r := io.Reader(cmd.InOrStdin())
	if in != "-" {
		f, err := os.Open(in)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	w := io.Writer(cmd.OutOrStdout())
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "closing output")
			}
		}()
		w = f
	}

	return solve(r, w, solveOptions{width: width, multi: multi, span: span})
}

type solveOptions struct {
	width uint
	multi bool
	span  bool
}

// solve reads every case from r and writes one result line per case to out.
func solve(r io.Reader, out io.Writer, opts solveOptions) error {
	cases, err := seqio.ReadCases(r, opts.multi)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	logger.Debug("Read input", zap.Int("cases", len(cases)))

	w := bufio.NewWriter(out)

	for i, values := range cases {
		res, err := maxxor.Compute(values, maxxor.Width(opts.width))
		switch {
		case errors.Is(err, maxxor.ErrEmptyInput):
			logger.Warn("Empty sequence, printing 0", zap.Int("case", i+1))
			if err := seqio.WriteEmpty(w); err != nil {
				return err
			}
			continue
		case err != nil:
			return errors.Wrapf(err, "case #%d", i+1)
		}

		logger.Debug("Computed maximum xor",
			zap.Int("case", i+1),
			zap.Int("n", len(values)),
			zap.Int64("value", res.Value),
			zap.Int("start", res.Start),
			zap.Int("end", res.End),
		)
		if err := seqio.WriteResult(w, res, opts.span); err != nil {
			return err
		}
	}
	return errors.Wrap(w.Flush(), "writing output")
}
