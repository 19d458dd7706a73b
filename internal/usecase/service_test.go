package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"svw.info/aoc2023/internal/camelcards"
	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/ports"
	"svw.info/aoc2023/internal/schematic"
	"svw.info/aoc2023/internal/validator"
)

type memInputs map[int]string

func (m memInputs) Load(_ context.Context, day int, kind domain.InputKind) ([]byte, error) {
	s, ok := m[day]
	if !ok || kind != domain.SampleInput {
		return nil, ports.ErrNoInput
	}
	return []byte(s), nil
}

func (m memInputs) List(context.Context) ([]domain.InputMeta, error) {
	var out []domain.InputMeta
	for d := range m {
		out = append(out, domain.InputMeta{Day: d, Sample: true})
	}
	return out, nil
}

var inputs = memInputs{
	3: "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598..\n",
	7: "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n",
}

func newService(t *testing.T, book string) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	b, err := validator.Decode(strings.NewReader(book))
	require.NoError(t, err)
	return NewService(inputs, b, zap.New(core), schematic.NewSolver(), camelcards.NewSolver()), logs
}

func TestSolve(t *testing.T) {
	u, logs := newService(t, "")
	ctx := context.Background()

	assert.Equal(t, []int{3, 7}, u.Days())

	ans, _, err := u.Solve(ctx, 7, domain.SampleInput)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer{Day: 7, Part1: 6440, Part2: 5905}, ans)
	require.Equal(t, 1, logs.FilterMessage("solved").Len())

	_, _, err = u.Solve(ctx, 7, domain.RealInput)
	assert.ErrorIs(t, err, ports.ErrNoInput)

	_, _, err = u.Solve(ctx, 4, domain.SampleInput)
	assert.ErrorIs(t, err, ports.ErrNoSolver)
}

func TestSolveInputWrapsDay(t *testing.T) {
	u, logs := newService(t, "")
	_, _, err := u.SolveInput(context.Background(), 3, []byte("...\n..\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "day 3: "), err.Error())
	assert.Equal(t, 1, logs.FilterMessage("solve failed").Len())
}

func TestCheck(t *testing.T) {
	u, logs := newService(t, "days:\n  3:\n    part1: 4361\n    part2: 1\n")
	ctx := context.Background()

	ans, ok, bad, err := u.Check(ctx, 3, domain.SampleInput)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 467835, ans.Part2)
	require.Len(t, bad, 1)
	assert.Equal(t, domain.PartTwo, bad[0].Part)
	assert.Equal(t, 1, logs.FilterMessage("answer mismatch").Len())

	_, _, _, err = u.Check(ctx, 7, domain.SampleInput)
	assert.ErrorIs(t, err, validator.ErrNoExpectation)
}

func TestInventory(t *testing.T) {
	u, _ := newService(t, "")
	got, err := u.Inventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.InputMeta{{Day: 3, Sample: true}, {Day: 7, Sample: true}}, got)
}

func TestNotConfigured(t *testing.T) {
	u := NewService(nil, nil, nil, schematic.NewSolver())
	_, _, err := u.Solve(context.Background(), 3, domain.RealInput)
	assert.True(t, errors.Is(err, errNotConfigured))
	_, _, _, err = u.Check(context.Background(), 3, domain.RealInput)
	assert.True(t, errors.Is(err, errNotConfigured))
}
