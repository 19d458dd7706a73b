package ports

import (
	"context"
	"errors"
	"time"

	"svw.info/aoc2023/internal/domain"
)

var (
	// ErrNoSolver is returned for a day without a registered solver.
	ErrNoSolver = errors.New("no solver registered for day")
	// ErrNoInput is returned when no input file exists for a day.
	ErrNoInput = errors.New("input not found")
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Records  int
	Duration time.Duration
}

// Solver parses one day's input and computes both answers.
type Solver interface {
	Day() int
	Solve(ctx context.Context, input []byte) (domain.Answer, Stats, error)
}

// InputSource loads raw puzzle input.
type InputSource interface {
	Load(ctx context.Context, day int, kind domain.InputKind) ([]byte, error)
	List(ctx context.Context) ([]domain.InputMeta, error)
}

// Validator compares an answer against the recorded one.
type Validator interface {
	Validate(ctx context.Context, a domain.Answer) (ok bool, mismatches []domain.Mismatch, err error)
}
