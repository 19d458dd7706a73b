package schematic

import (
	"context"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc2023/internal/parse"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestSampleAnswers(t *testing.T) {
	g, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 4361, g.PartSum())
	assert.Equal(t, 467835, g.GearRatioSum())
}

func TestSolverUnder1s(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ans, st, err := NewSolver().Solve(ctx, []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 3, ans.Day)
	assert.Equal(t, 4361, ans.Part1)
	assert.Equal(t, 467835, ans.Part2)
	assert.Equal(t, 10, st.Records)
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Cell{Kind: Empty}, Classify('.'))
	assert.Equal(t, Cell{Kind: Digit, Value: 7}, Classify('7'))
	assert.Equal(t, Cell{Kind: Symbol, Symbol: '#'}, Classify('#'))
}

func TestMergeRunsShareValueAndWidth(t *testing.T) {
	g, err := Parse([]byte(sample))
	require.NoError(t, err)

	for _, n := range g.Numbers() {
		for dx := 0; dx < n.Len; dx++ {
			c := g.At(n.X+dx, n.Y)
			require.Equal(t, Digit, c.Kind)
			assert.Equal(t, n.Value, c.Value, "value at (%d,%d)", n.X+dx, n.Y)
			assert.Equal(t, n.Len, c.Run, "run at (%d,%d)", n.X+dx, n.Y)
			assert.Equal(t, n.ID, c.ID, "id at (%d,%d)", n.X+dx, n.Y)
		}
	}
	got := make([]int, 0, len(g.Numbers()))
	for _, n := range g.Numbers() {
		got = append(got, n.Value)
	}
	want := []int{467, 114, 35, 633, 617, 58, 592, 755, 664, 598}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestRunsDoNotWrapRows(t *testing.T) {
	g, err := Parse([]byte("..12\n34..\n"))
	require.NoError(t, err)
	require.Len(t, g.Numbers(), 2)
	assert.Equal(t, 12, g.Numbers()[0].Value)
	assert.Equal(t, 34, g.Numbers()[1].Value)
	assert.NotEqual(t, g.Numbers()[0].ID, g.Numbers()[1].ID)
}

func TestUniqueIDsPerRun(t *testing.T) {
	g, err := Parse([]byte("12.12\n"))
	require.NoError(t, err)
	a, b := g.At(0, 0), g.At(3, 0)
	assert.Equal(t, a.Value, b.Value)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), g.At(1, 0).Key())
}

func TestEdgeClipping(t *testing.T) {
	cases := []struct {
		name  string
		input string
		parts int
	}{
		{"first column no symbol", "1..\n...\n..#\n", 0},
		{"first column with symbol", "1..\n#..\n", 1},
		{"last column", "..9\n.*.\n", 9},
		{"last column far symbol", "#.9\n...\n", 0},
		{"last row", "...\n*..\n42.\n", 42},
		{"single cell", "5\n", 0},
		{"whole row", "123\n", 0},
		{"symbol past run on next row start", "..7\n#..\n", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.parts, g.PartSum())
		})
	}
}

func TestGearsDedupeByIdentity(t *testing.T) {
	// 12 touches the gear with two cells but counts once; the two 12s are
	// distinct numbers that happen to share a value.
	g, err := Parse([]byte("12.\n.*.\n.12\n"))
	require.NoError(t, err)
	gears := g.Gears()
	require.Len(t, gears, 1)
	assert.Equal(t, 144, gears[0].Ratio())
}

func TestGearNeedsExactlyTwo(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"none", "...\n.*.\n...\n", 0},
		{"one", "5..\n.*.\n...\n", 0},
		{"two", "5..\n.*.\n..3\n", 15},
		{"three", "5.2\n.*.\n..3\n", 0},
		{"other symbol", "5..\n.#.\n..3\n", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.GearRatioSum())
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("\n\n"))
	assert.ErrorIs(t, err, errEmpty)

	_, err = Parse([]byte("...\n..\n"))
	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestNumberTooLarge(t *testing.T) {
	_, err := Parse([]byte("....\n.99999999999999999999#\n"))
	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Col)
	assert.ErrorIs(t, err, strconv.ErrRange)

	// the largest int still fits
	g, err := Parse([]byte(strconv.Itoa(math.MaxInt) + "#\n"))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, g.PartSum())
}
