package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynprog/calculator"
	"github.com/katalvlaran/dynprog/coins"
	"github.com/katalvlaran/dynprog/dtw"
	"github.com/katalvlaran/dynprog/editdist"
	"github.com/katalvlaran/dynprog/knapsack"
	"github.com/katalvlaran/dynprog/lcs"
)

// timed logs the duration of a solver call at debug level.
func (c *cli) timed(op string, start time.Time) {
	c.log.Debug("solved", "op", op, "elapsed", time.Since(start))
}

func (c *cli) coinsCmd() *cobra.Command {
	var (
		value int
		set   []int
		list  bool
	)
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Minimum number of coins summing exactly to a value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Debug("coins", "value", value, "coins", set)
			defer c.timed("coins", time.Now())
			if !list {
				n, err := coins.MinCoins(value, set)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, n)

				return nil
			}
			used, err := coins.Exchange(value, set)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, len(used), used)

			return nil
		},
	}
	cmd.Flags().IntVar(&value, "value", 0, "target value")
	cmd.Flags().IntSliceVar(&set, "coins", []int{1}, "coin denominations")
	cmd.Flags().BoolVar(&list, "list", false, "also print the coins used")

	return cmd
}

func (c *cli) calcCmd() *cobra.Command {
	var value int
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Shortest +1/×2/×3 chain from 1 to a value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Debug("calc", "value", value)
			defer c.timed("calc", time.Now())
			path, err := calculator.Primitive(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, len(path)-1)
			fmt.Fprintln(c.out, joinInts(path))

			return nil
		},
	}
	cmd.Flags().IntVar(&value, "value", 1, "target value (>= 1)")

	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var script bool
	cmd := &cobra.Command{
		Use:   "edit <a> <b>",
		Short: "Levenshtein distance between two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Debug("edit", "a", args[0], "b", args[1])
			defer c.timed("edit", time.Now())
			a, b := []rune(args[0]), []rune(args[1])
			d, err := editdist.Distance(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, d)
			if !script {
				return nil
			}
			edits, err := editdist.Script(a, b)
			if err != nil {
				return err
			}
			for _, e := range edits {
				switch e.Kind {
				case editdist.Insert:
					fmt.Fprintf(c.out, "%s %c\n", e.Kind, b[e.J])
				case editdist.Delete:
					fmt.Fprintf(c.out, "%s %c\n", e.Kind, a[e.I])
				default:
					fmt.Fprintf(c.out, "%s %c %c\n", e.Kind, a[e.I], b[e.J])
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&script, "script", false, "print the edit script")

	return cmd
}

func (c *cli) lcsCmd() *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "lcs <a> <b> [c]",
		Short: "Longest common subsequence of two or three sequences",
		Long: `Sequences are comma-separated integers when at least one argument contains
a comma and every argument parses as such; otherwise they are compared
character by character, so "123" is the sequence 1 2 3.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Debug("lcs", "sequences", args)
			defer c.timed("lcs", time.Now())
			if show && len(args) == 3 {
				return fmt.Errorf("--show supports two sequences only")
			}
			if ints, ok := intSeqs(args); ok {
				return printLCS(c, ints, show, joinInts)
			}

			return printLCS(c, runeSeqs(args), show, func(r []rune) string { return string(r) })
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print one longest subsequence")

	return cmd
}

// printLCS writes the LCS length of seqs and, with show, one subsequence.
func printLCS[T comparable](c *cli, seqs [][]T, show bool, format func([]T) string) error {
	var (
		n   int
		err error
	)
	if len(seqs) == 3 {
		n, err = lcs.Length3(seqs[0], seqs[1], seqs[2])
	} else {
		n, err = lcs.Length2(seqs[0], seqs[1])
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, n)
	if show {
		sub, err := lcs.Subsequence2(seqs[0], seqs[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, format(sub))
	}

	return nil
}

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <seq> [seq...]",
		Short: "Longest contiguous run shared by all sequences after common-item filtering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Debug("run", "sequences", args)
			defer c.timed("run", time.Now())
			var (
				n   int
				err error
			)
			if ints, ok := intSeqs(args); ok {
				n, err = lcs.CommonRun(ints...)
			} else {
				n, err = lcs.CommonRun(runeSeqs(args)...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, n)

			return nil
		},
	}
}

func (c *cli) knapsackCmd() *cobra.Command {
	var (
		capacity int
		raw      []string
		sel      bool
	)
	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Maximum value of items fitting a capacity, each used at most once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]knapsack.Item, len(raw))
			for i, r := range raw {
				it, err := parseItem(r)
				if err != nil {
					return err
				}
				items[i] = it
			}
			c.log.Debug("knapsack", "capacity", capacity, "items", len(items))
			defer c.timed("knapsack", time.Now())

			if !sel {
				v, err := knapsack.MaxValue(capacity, items)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, v)

				return nil
			}
			s, err := knapsack.Select(capacity, items)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, s.Value)
			fmt.Fprintf(c.out, "items=%s weight=%d\n", joinInts(s.Indexes), s.Weight)

			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "weight capacity")
	cmd.Flags().StringArrayVar(&raw, "item", nil, "item as weight:value (repeatable)")
	cmd.Flags().BoolVar(&sel, "select", false, "also print the chosen item indexes")

	return cmd
}

func (c *cli) dtwCmd() *cobra.Command {
	var (
		a, b []float64
		opts = dtw.DefaultOptions()
		mode string
	)
	cmd := &cobra.Command{
		Use:   "dtw",
		Short: "Dynamic time warping distance between two numeric series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch mode {
			case "full":
				opts.MemoryMode = dtw.FullMatrix
			case "tworows":
				opts.MemoryMode = dtw.TwoRows
			case "row":
				opts.MemoryMode = dtw.NoMemory
			default:
				return fmt.Errorf("unknown memory mode %q (want full, tworows or row)", mode)
			}
			c.log.Debug("dtw", "a", len(a), "b", len(b), "window", opts.Window, "penalty", opts.SlopePenalty)
			defer c.timed("dtw", time.Now())

			dist, path, err := dtw.DTW(a, b, &opts)
			if err != nil {
				return err
			}
			if math.IsInf(dist, 1) {
				fmt.Fprintln(c.out, "+Inf")
			} else {
				fmt.Fprintf(c.out, "%g\n", dist)
			}
			if len(path) > 0 {
				cells := make([]string, len(path))
				for i, p := range path {
					cells[i] = fmt.Sprintf("%d:%d", p.I, p.J)
				}
				fmt.Fprintln(c.out, strings.Join(cells, " "))
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&a, "a", nil, "first series")
	cmd.Flags().Float64SliceVar(&b, "b", nil, "second series")
	cmd.Flags().IntVar(&opts.Window, "window", -1, "Sakoe-Chiba band, -1 for none")
	cmd.Flags().Float64Var(&opts.SlopePenalty, "penalty", 0, "insertion/deletion penalty")
	cmd.Flags().BoolVar(&opts.ReturnPath, "path", false, "print the warping path (full mode only)")
	cmd.Flags().StringVar(&mode, "mode", "full", "memory mode: full, tworows or row")

	return cmd
}

// joinInts renders vals space-separated.
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}
