package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/dotplot"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, log bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(input, []byte("1,2,3,3,3,3,5,6,6,2,3,4,2,1,2\n"), 0o600))
	output := filepath.Join(dir, "dots.svg")

	out, err := execute(t, "", "--summary", "-o", output, input)
	require.NoError(t, err)
	assert.FileExists(t, output)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"key", "count", "ncount", "frac", "distinct"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "6", "1.000", "0.400", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"6", "2", "0.333", "0.133", "1"}, strings.Fields(lines[5]))
}

func TestRunStdin(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dots.png")
	out, err := execute(t, "5\n5\n5\n", "--num-stacks", "3", "-o", output, "-")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, output)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "dots.png")

	_, err := execute(t, "", "-o", output)
	assert.ErrorIs(t, err, dotplot.ErrEmptyInput)

	_, err = execute(t, "1,two,3", "-o", output)
	assert.ErrorIs(t, err, dotplot.ErrNotNumeric)

	_, err = execute(t, "1,2,3", "--num-stacks", "1", "-o", output)
	assert.ErrorIs(t, err, dotplot.ErrInvalidStackCount)

	_, err = execute(t, "1,2,3", "--num-stacks", "0", "-o", output)
	assert.ErrorIs(t, err, dotplot.ErrInvalidStackCount)

	_, err = execute(t, "1,2,3", "--keys", "2,3", "-o", output)
	assert.ErrorIs(t, err, dotplot.ErrBelowFirstKey)

	_, err = execute(t, "1,2,3", "-o", output, filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	assert.NoFileExists(t, output)
}
