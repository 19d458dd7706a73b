package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	day3Sample = "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598..\n"
	day7Sample = "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n"
)

func workspace(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"AOC_INPUT_DIR", "AOC_ANSWERS", "AOC_LOG_LEVEL", "AOC_TIMEOUT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_day3.txt"), []byte(day3Sample), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_day7.txt"), []byte(day7Sample), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolveSample(t *testing.T) {
	dir := workspace(t)
	out, err := run(t, "--input-dir", dir, "solve", "--sample", "3", "7")
	require.NoError(t, err)
	assert.Equal(t, "Day 3\n  Part 1: 4361\n  Part 2: 467835\nDay 7\n  Part 1: 6440\n  Part 2: 5905\n", out)
}

func TestSolveFile(t *testing.T) {
	dir := workspace(t)
	out, err := run(t, "solve", "7", "--file", filepath.Join(dir, "test_day7.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "Part 2: 5905")

	_, err = run(t, "solve", "3", "7", "--file", filepath.Join(dir, "test_day7.txt"))
	assert.Error(t, err)
}

func TestSolveErrors(t *testing.T) {
	dir := workspace(t)
	_, err := run(t, "--input-dir", dir, "solve", "3")
	assert.ErrorContains(t, err, "input not found")

	_, err = run(t, "--input-dir", dir, "solve", "x")
	assert.ErrorContains(t, err, "invalid day")

	_, err = run(t, "--input-dir", dir, "solve", "12", "--sample")
	assert.ErrorContains(t, err, "no solver")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("...\n..\n"), 0o644))
	_, err = run(t, "solve", "3", "--file", bad)
	assert.ErrorContains(t, err, "ragged row")
}

func TestAllSample(t *testing.T) {
	dir := workspace(t)
	out, err := run(t, "--input-dir", dir, "all", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 3\n")
	assert.Contains(t, out, "Day 7\n")
}

func TestCheck(t *testing.T) {
	dir := workspace(t)
	good := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(good, []byte("days:\n  3:\n    part1: 4361\n    part2: 467835\n  7:\n    part1: 6440\n    part2: 5905\n"), 0o644))
	out, err := run(t, "--input-dir", dir, "--answers", good, "check", "--sample")
	require.NoError(t, err)
	assert.Equal(t, "Day 3 ok\nDay 7 ok\n", out)

	wrong := filepath.Join(dir, "wrong.yaml")
	require.NoError(t, os.WriteFile(wrong, []byte("days:\n  7:\n    part1: 1\n"), 0o644))
	out, err = run(t, "--input-dir", dir, "--answers", wrong, "check", "--sample", "7")
	assert.Error(t, err)
	assert.Contains(t, out, "Day 7 part 1: got 6440, want 1")

	_, err = run(t, "--input-dir", dir, "check", "--sample")
	assert.ErrorContains(t, err, "--answers")
}

func TestRecordThenCheck(t *testing.T) {
	dir := workspace(t)
	out, err := run(t, "--input-dir", dir, "record", "--sample", "3", "7")
	require.NoError(t, err)
	book := filepath.Join(dir, "book.yaml")
	require.NoError(t, os.WriteFile(book, []byte(out), 0o644))

	t.Setenv("AOC_ANSWERS", book)
	out, err = run(t, "--input-dir", dir, "check", "--sample")
	require.NoError(t, err)
	assert.Equal(t, "Day 3 ok\nDay 7 ok\n", out)
}

func TestList(t *testing.T) {
	dir := workspace(t)
	t.Setenv("AOC_INPUT_DIR", dir)
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "day 3\treal=false\tsample=true\n")
	assert.Contains(t, out, "day 1\treal=false\tsample=false\n")
	assert.Contains(t, out, "day 9\t")
}

func TestCheckRepoSamples(t *testing.T) {
	workspace(t)
	data := filepath.Join("..", "..", "data")
	out, err := run(t, "--input-dir", data, "--answers", filepath.Join(data, "sample_answers.yaml"), "check", "--sample")
	require.NoError(t, err, out)
	for d := 1; d <= 9; d++ {
		assert.Contains(t, out, "Day "+strconv.Itoa(d)+" ok\n")
	}
}
