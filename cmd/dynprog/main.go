// Command dynprog runs the dynprog algorithms from the command line.
//
// Usage:
//
//	dynprog coins --value 34 --coins 1,3,4 --list
//	dynprog calc --value 96234
//	dynprog edit editing distance --script
//	dynprog lcs 1,2,3 2,1,3 1,3,5
//	dynprog run 1,7,2,3 1,2,9,3
//	dynprog knapsack --capacity 10 --item 6:30 --item 3:14 --item 4:16 --item 2:9
//	dynprog dtw --a 1,2,3 --b 1,2,2,3 --path
package main

import (
	"log/slog"
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if cmd, err := root.ExecuteC(); err != nil {
		slog.Error("dynprog failed", "command", cmd.Name(), "error", err)
		os.Exit(1)
	}
}
