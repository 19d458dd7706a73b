package trebuchet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc2023/internal/parse"
)

const sample1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const sample2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestSamples(t *testing.T) {
	got, err := Sum(parse.Lines([]byte(sample1)), false)
	require.NoError(t, err)
	assert.Equal(t, 142, got)

	got, err = Sum(parse.Lines([]byte(sample2)), true)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestValue(t *testing.T) {
	cases := []struct {
		in    string
		words bool
		want  int
	}{
		{"treb7uchet", false, 77},
		{"5four1bvggfs62nineone", false, 52},
		{"5four1bvggfs62nineone", true, 51},
		{"xtwone3four", true, 24},
		{"twone", true, 21},
		{"zoneight", true, 18},
		{"eighthree", true, 83},
	}
	for _, tc := range cases {
		got, ok := Value(tc.in, tc.words)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNoDigitIsAnError(t *testing.T) {
	_, err := Sum(parse.Lines([]byte("12\nabc\n")), false)
	assert.EqualError(t, err, `line 2: no digit in "abc"`)
}

func TestSolver(t *testing.T) {
	ans, st, err := NewSolver().Solve(context.Background(), []byte(sample1))
	require.NoError(t, err)
	assert.Equal(t, 142, ans.Part1)
	assert.Equal(t, 142, ans.Part2)
	assert.Equal(t, 4, st.Records)
}
