package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/ports"
)

// Service runs registered day solvers against loaded inputs.
type Service struct {
	Solvers   map[int]ports.Solver
	Inputs    ports.InputSource
	Validator ports.Validator
	Log       *zap.Logger
}

func NewService(in ports.InputSource, v ports.Validator, log *zap.Logger, solvers ...ports.Solver) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	u := &Service{Solvers: make(map[int]ports.Solver, len(solvers)), Inputs: in, Validator: v, Log: log}
	for _, s := range solvers {
		u.Solvers[s.Day()] = s
	}
	return u
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Days lists the registered days in ascending order.
func (u *Service) Days() []int {
	days := make([]int, 0, len(u.Solvers))
	for d := range u.Solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

func (u *Service) solver(day int) (ports.Solver, error) {
	s, ok := u.Solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ports.ErrNoSolver, day)
	}
	return s, nil
}

// Solve loads the day's input of the given kind and solves it.
func (u *Service) Solve(ctx context.Context, day int, kind domain.InputKind) (domain.Answer, ports.Stats, error) {
	if u.Inputs == nil {
		return domain.Answer{}, ports.Stats{}, errNotConfigured
	}
	if _, err := u.solver(day); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	input, err := u.Inputs.Load(ctx, day, kind)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	return u.SolveInput(ctx, day, input)
}

// SolveInput solves a day against input supplied by the caller.
func (u *Service) SolveInput(ctx context.Context, day int, input []byte) (domain.Answer, ports.Stats, error) {
	s, err := u.solver(day)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	ans, st, err := s.Solve(ctx, input)
	if err != nil {
		u.Log.Error("solve failed", zap.Int("day", day), zap.Error(err))
		return domain.Answer{}, st, fmt.Errorf("day %d: %w", day, err)
	}
	u.Log.Info("solved",
		zap.Int("day", day),
		zap.Int("records", st.Records),
		zap.Duration("duration", st.Duration),
	)
	return ans, st, nil
}

// Check solves a day and compares the answer with the recorded one.
func (u *Service) Check(ctx context.Context, day int, kind domain.InputKind) (domain.Answer, bool, []domain.Mismatch, error) {
	if u.Validator == nil {
		return domain.Answer{}, false, nil, errNotConfigured
	}
	ans, _, err := u.Solve(ctx, day, kind)
	if err != nil {
		return domain.Answer{}, false, nil, err
	}
	ok, bad, err := u.Validator.Validate(ctx, ans)
	if err != nil {
		return ans, false, nil, err
	}
	for _, m := range bad {
		u.Log.Warn("answer mismatch",
			zap.Int("day", m.Day),
			zap.Int("part", int(m.Part)),
			zap.Int("got", m.Got),
			zap.Int("want", m.Want),
		)
	}
	return ans, ok, bad, nil
}

// Inventory lists every registered day with the inputs available for it.
func (u *Service) Inventory(ctx context.Context) ([]domain.InputMeta, error) {
	if u.Inputs == nil {
		return nil, errNotConfigured
	}
	have, err := u.Inputs.List(ctx)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int]domain.InputMeta, len(have))
	for _, m := range have {
		byDay[m.Day] = m
	}
	out := make([]domain.InputMeta, 0, len(u.Solvers))
	for _, d := range u.Days() {
		m := byDay[d]
		m.Day = d
		out = append(out, m)
	}
	return out, nil
}
