package wasteland

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample1 = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const sample2 = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const ghosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestStepsToFinish(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"direct", sample1, 2},
		{"repeating", sample2, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Parse([]byte(tc.input))
			require.NoError(t, err)
			got, err := n.StepsToFinish(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGhostSteps(t *testing.T) {
	n, err := Parse([]byte(ghosts))
	require.NoError(t, err)
	got, err := n.GhostSteps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestSolver(t *testing.T) {
	ans, _, err := NewSolver().Solve(context.Background(), []byte(sample2))
	require.NoError(t, err)
	assert.Equal(t, 6, ans.Part1)
	assert.Equal(t, 6, ans.Part2)
}

func TestCycleDetected(t *testing.T) {
	n, err := Parse([]byte("L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n"))
	require.NoError(t, err)
	_, err = n.StepsToFinish(context.Background())
	assert.ErrorIs(t, err, ErrCycle)
}

func TestUnknownNode(t *testing.T) {
	n, err := Parse([]byte("L\n\nAAA = (QQQ, QQQ)\n"))
	require.NoError(t, err)
	_, err = n.StepsToFinish(context.Background())
	assert.ErrorIs(t, err, ErrUnknownNode)

	n, err = Parse([]byte("L\n\nBBB = (ZZZ, ZZZ)\n"))
	require.NoError(t, err)
	_, err = n.StepsToFinish(context.Background())
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestCanceled(t *testing.T) {
	n, err := Parse([]byte(sample1))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.StepsToFinish(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"RL\n",
		"RX\n\nAAA = (BBB, CCC)\n",
		"RL\n\nAAA (BBB, CCC)\n",
		"RL\n\nAAA = BBB, CCC\n",
		"RL\n\nAAA = (BBB CCC)\n",
		"RL\n\nAAA = (BBB, CCC)\nAAA = (BBB, CCC)\n",
	} {
		_, err := Parse([]byte(in))
		assert.Error(t, err, in)
	}
}
