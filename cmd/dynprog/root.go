package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// envLogFormat is consulted when --log-format is not given.
const envLogFormat = "DYNPROG_LOG_FORMAT"

// cli carries the state shared by every subcommand.
type cli struct {
	out       io.Writer
	errOut    io.Writer
	verbose   bool
	logFormat string
	log       *slog.Logger
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut, log: slog.New(slog.NewTextHandler(errOut, nil))}

	root := &cobra.Command{
		Use:   "dynprog",
		Short: "Dynamic-programming solvers for sequences and item sets",
		Long: `dynprog exposes coin exchange, the primitive calculator, edit distance,
longest common subsequence, knapsack and dynamic time warping solvers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(c.errOut, c.logFormat, c.verbose)
			if err != nil {
				return err
			}
			c.log = logger
			slog.SetDefault(logger)

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log inputs and timings at debug level")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", os.Getenv(envLogFormat), "log format: text or json (env "+envLogFormat+")")

	root.AddCommand(
		c.coinsCmd(),
		c.calcCmd(),
		c.editCmd(),
		c.lcsCmd(),
		c.runCmd(),
		c.knapsackCmd(),
		c.dtwCmd(),
	)

	return root
}

// newLogger returns a slog logger for format ("" means text) at Info, or
// Debug when verbose is set.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}
