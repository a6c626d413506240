package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynprog/coins"
	"github.com/katalvlaran/dynprog/knapsack"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestCoinsCmd(t *testing.T) {
	out, _, err := execute(t, "coins", "--value", "34", "--coins", "1,3,4")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	out, _, err = execute(t, "coins", "--value", "6", "--coins", "1,3,4", "--list")
	require.NoError(t, err)
	assert.Equal(t, "2 [3 3]\n", out)

	_, _, err = execute(t, "coins", "--value", "7", "--coins", "2,4")
	assert.ErrorIs(t, err, coins.ErrUnreachable)
}

func TestCalcCmd(t *testing.T) {
	out, _, err := execute(t, "calc", "--value", "5")
	require.NoError(t, err)
	assert.Equal(t, "3\n1 2 4 5\n", out)

	_, _, err = execute(t, "calc", "--value", "0")
	assert.Error(t, err)
}

func TestEditCmd(t *testing.T) {
	out, _, err := execute(t, "edit", "editing", "distance")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, _, err = execute(t, "edit", "ab", "abc", "--script")
	require.NoError(t, err)
	assert.Equal(t, "1\n= a a\n= b b\n+ c\n", out)

	_, _, err = execute(t, "edit", "only-one")
	assert.Error(t, err)
}

func TestLCSCmd(t *testing.T) {
	out, _, err := execute(t, "lcs", "2,7,8,3", "5,2,8,7")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = execute(t, "lcs", "1,2,3", "2,1,3", "1,3,5")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = execute(t, "lcs", "AGGTAB", "GXTXAYB", "--show")
	require.NoError(t, err)
	assert.Equal(t, "4\nGTAB\n", out)

	// Comma-free digits compare character by character, like edit.
	out, _, err = execute(t, "lcs", "123", "321")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = execute(t, "lcs", "1234", "2,3")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, _, err = execute(t, "lcs", "a", "b", "c", "--show")
	assert.Error(t, err)
}

func TestRunCmd(t *testing.T) {
	out, _, err := execute(t, "run", "1,7,2,3", "1,2,9,3")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = execute(t, "run", "abcd", "xbcy")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = execute(t, "run", "1234", "234")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestKnapsackCmd(t *testing.T) {
	args := []string{"knapsack", "--capacity", "10",
		"--item", "6:30", "--item", "3:14", "--item", "4:16", "--item", "2:9"}

	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)

	out, _, err = execute(t, append(args, "--select")...)
	require.NoError(t, err)
	assert.Equal(t, "46\nitems=0 2 weight=10\n", out)

	_, _, err = execute(t, "knapsack", "--capacity", "3", "--item", "oops")
	assert.ErrorContains(t, err, "weight:value")

	_, _, err = execute(t, "knapsack", "--capacity=-1")
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
}

func TestDTWCmd(t *testing.T) {
	out, _, err := execute(t, "dtw", "--a", "1,2,3", "--b", "1,2,2,3", "--path")
	require.NoError(t, err)
	assert.Equal(t, "0\n0:0 1:1 1:2 2:3\n", out)

	out, _, err = execute(t, "dtw", "--a", "2,3,4", "--b", "2,3,4,5", "--window", "0", "--mode", "row")
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n", out)

	_, _, err = execute(t, "dtw", "--a", "1", "--b", "1", "--mode", "bogus")
	assert.ErrorContains(t, err, "unknown memory mode")
}

func TestLogging(t *testing.T) {
	_, logs, err := execute(t, "--verbose", "--log-format", "json", "calc", "--value", "10")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"calc"`)
	assert.Contains(t, logs, `"op":"calc"`)

	_, logs, err = execute(t, "calc", "--value", "10")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(logs), "debug logs are off by default")

	_, _, err = execute(t, "--log-format", "xml", "calc")
	assert.ErrorContains(t, err, "unknown log format")
}

func TestParseInts(t *testing.T) {
	v, ok := parseInts("1, 2,3")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)

	_, ok = parseInts("1,a")
	assert.False(t, ok)

	v, ok = parseInts("")
	require.True(t, ok)
	assert.Empty(t, v)
}

func TestIntSeqs(t *testing.T) {
	_, ok := intSeqs([]string{"123", "321"})
	assert.False(t, ok, "digits without commas are text")

	seqs, ok := intSeqs([]string{"7", "1,7"})
	require.True(t, ok)
	assert.Equal(t, [][]int{{7}, {1, 7}}, seqs)

	_, ok = intSeqs([]string{"1,2", "x,y"})
	assert.False(t, ok)
}
