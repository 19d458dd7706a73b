package camelcards

import (
	"context"
	"time"

	"svw.info/aoc2023/internal/domain"
	"svw.info/aoc2023/internal/ports"
)

// Solver answers day 7: total winnings with and without wildcards.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() int { return 7 }

func (s *Solver) Solve(ctx context.Context, input []byte) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	plain, err := Parse(input, false)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	wild, err := Parse(input, true)
	if err != nil {
		return domain.Answer{}, ports.Stats{Duration: time.Since(start)}, err
	}
	ans := domain.Answer{
		Day:   s.Day(),
		Part1: TotalWinnings(plain, Standard),
		Part2: TotalWinnings(wild, WildcardRank),
	}
	return ans, ports.Stats{Records: len(plain), Duration: time.Since(start)}, nil
}
